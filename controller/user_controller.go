package controller

import (
	"net/http"

	"github.com/evently-app/evently/apperror"
	"github.com/evently-app/evently/entity"
	"github.com/evently-app/evently/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserController struct {
	UserService *service.UserService
}

func (c *UserController) Create(ctx *gin.Context) {
	var user entity.User
	if err := ctx.ShouldBindJSON(&user); err != nil {
		respondError(ctx, apperror.NewValidation(err.Error()))
		return
	}

	created, err := c.UserService.Create(ctx.Request.Context(), user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, "user create", created)
}

func (c *UserController) Update(ctx *gin.Context) {
	id, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid user id"))
		return
	}

	var user entity.User
	if err := ctx.ShouldBindJSON(&user); err != nil {
		respondError(ctx, apperror.NewValidation(err.Error()))
		return
	}

	updated, err := c.UserService.Update(ctx.Request.Context(), id, user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "updated", updated)
}

func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.FindAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "user list", users)
}

func (c *UserController) Get(ctx *gin.Context) {
	id, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid user id"))
		return
	}

	user, err := c.UserService.FindOneByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "user details", user)
}

func (c *UserController) Delete(ctx *gin.Context) {
	id, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondError(ctx, apperror.NewValidation("invalid user id"))
		return
	}

	deleted, err := c.UserService.Delete(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "user deleted", deleted)
}
