package controller

import (
	"net/http"

	"github.com/evently-app/evently/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Envelope is the uniform success response shape.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

func respond(ctx *gin.Context, statusCode int, message string, data any) {
	ctx.JSON(statusCode, Envelope{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

func respondError(ctx *gin.Context, err error) {
	statusCode := apperror.StatusCode(err)
	message := err.Error()

	if statusCode == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("request failed")
		message = "Internal Server Error"
	}

	ctx.AbortWithStatusJSON(statusCode, Envelope{
		StatusCode: statusCode,
		Message:    message,
	})
}
