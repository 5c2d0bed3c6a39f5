package controller

import (
	"net/http"

	"github.com/evently-app/evently/apperror"
	"github.com/evently-app/evently/helpers"
	"github.com/evently-app/evently/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type BookingController struct {
	BookingService *service.BookingService
}

type createBookingRequest struct {
	EventID string `json:"eventId"`
}

func (c *BookingController) Create(ctx *gin.Context) {
	var req createBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperror.NewValidation(err.Error()))
		return
	}

	eventID, err := bson.ObjectIDFromHex(req.EventID)
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid event id"))
		return
	}

	booking, err := c.BookingService.Book(ctx.Request.Context(), actorID(ctx), eventID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, "event booking", booking)
}

func (c *BookingController) Cancel(ctx *gin.Context) {
	bookingID, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid booking id"))
		return
	}

	booking, err := c.BookingService.Cancel(ctx.Request.Context(), actorID(ctx), bookingID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "booking cancelled", booking)
}

func (c *BookingController) List(ctx *gin.Context) {
	// Absent or non-numeric paging parameters fall back to zero values.
	var q helpers.PageQuery
	_ = decoder.Decode(&q, ctx.Request.URL.Query())

	scope := ctx.DefaultQuery("scope", service.BookingScopeAll)
	switch scope {
	case service.BookingScopeUpcoming, service.BookingScopePast, service.BookingScopeAll:
	default:
		respondError(ctx, apperror.NewValidation("scope must be upcoming, past or all"))
		return
	}

	page, err := c.BookingService.List(ctx.Request.Context(), actorID(ctx), scope, q)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, scope+" booking list", page)
}
