package controller

import (
	"strings"

	"github.com/evently-app/evently/apperror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const actorIDKey = "actorId"

// Authenticate verifies the bearer token issued by the identity provider and
// resolves the actor's user id into the request context.
func Authenticate(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			respondError(ctx, apperror.NewUnauthorized("missing access token"))
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			respondError(ctx, apperror.NewUnauthorized("invalid access token"))
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil {
			respondError(ctx, apperror.NewUnauthorized("invalid access token"))
			return
		}

		actorID, err := bson.ObjectIDFromHex(subject)
		if err != nil {
			respondError(ctx, apperror.NewUnauthorized("invalid access token"))
			return
		}

		ctx.Set(actorIDKey, actorID)
		ctx.Next()
	}
}

func actorID(ctx *gin.Context) bson.ObjectID {
	id, _ := ctx.Get(actorIDKey)
	actorID, _ := id.(bson.ObjectID)
	return actorID
}
