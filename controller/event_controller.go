package controller

import (
	"net/http"

	"github.com/evently-app/evently/apperror"
	"github.com/evently-app/evently/entity"
	"github.com/evently-app/evently/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type EventController struct {
	EventService *service.EventService
}

func (c *EventController) Create(ctx *gin.Context) {
	var event entity.Event
	if err := ctx.ShouldBindJSON(&event); err != nil {
		respondError(ctx, apperror.NewValidation(err.Error()))
		return
	}

	created, err := c.EventService.Create(ctx.Request.Context(), actorID(ctx), event)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, "event create", created)
}

func (c *EventController) Update(ctx *gin.Context) {
	eventID, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid event id"))
		return
	}

	var event entity.Event
	if err := ctx.ShouldBindJSON(&event); err != nil {
		respondError(ctx, apperror.NewValidation(err.Error()))
		return
	}

	updated, err := c.EventService.Update(ctx.Request.Context(), actorID(ctx), eventID, event)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "event update", updated)
}

func (c *EventController) Trending(ctx *gin.Context) {
	events, err := c.EventService.Trending(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "trending event list", events)
}

func (c *EventController) Favorites(ctx *gin.Context) {
	events, err := c.EventService.Favorites(ctx.Request.Context(), actorID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "favorite event list", events)
}

func (c *EventController) FavoriteToggle(ctx *gin.Context) {
	eventID, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid event id"))
		return
	}

	event, err := c.EventService.FavoriteToggle(ctx.Request.Context(), actorID(ctx), eventID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "favorite", event)
}

func (c *EventController) Follow(ctx *gin.Context) {
	eventID, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid event id"))
		return
	}

	state, err := c.EventService.FollowEvent(ctx.Request.Context(), actorID(ctx), eventID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "follow", state)
}

func (c *EventController) Unfollow(ctx *gin.Context) {
	eventID, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid event id"))
		return
	}

	state, err := c.EventService.UnfollowEvent(ctx.Request.Context(), actorID(ctx), eventID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "unFollow", state)
}

func (c *EventController) Followers(ctx *gin.Context) {
	eventID, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid event id"))
		return
	}

	followers, err := c.EventService.Followers(ctx.Request.Context(), eventID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "event interested follower list", followers)
}
