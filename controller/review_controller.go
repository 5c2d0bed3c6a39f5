package controller

import (
	"net/http"

	"github.com/evently-app/evently/apperror"
	"github.com/evently-app/evently/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type ReviewController struct {
	ReviewService *service.ReviewService
}

type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (c *ReviewController) Create(ctx *gin.Context) {
	eventID, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid event id"))
		return
	}

	var req createReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperror.NewValidation(err.Error()))
		return
	}

	review, err := c.ReviewService.Create(ctx.Request.Context(), actorID(ctx), eventID, req.Rating, req.Comment)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, "rating", review)
}

func (c *ReviewController) ListForEvent(ctx *gin.Context) {
	eventID, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid event id"))
		return
	}

	reviews, err := c.ReviewService.ListForEvent(ctx.Request.Context(), eventID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "review & rate list", reviews)
}

type voteRequest struct {
	IsLike    bool `json:"isLike"`
	IsDisLike bool `json:"isDisLike"`
}

func (c *ReviewController) Vote(ctx *gin.Context) {
	reviewID, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid review id"))
		return
	}

	var req voteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperror.NewValidation(err.Error()))
		return
	}

	review, err := c.ReviewService.Vote(ctx.Request.Context(), actorID(ctx), reviewID, req.IsLike, req.IsDisLike)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "like dislike", review)
}
