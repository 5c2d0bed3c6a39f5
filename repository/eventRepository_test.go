package repository

import (
	"testing"
	"time"

	"github.com/evently-app/evently/entity"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestEventUpdateDocument(t *testing.T) {
	event := entity.Event{
		ID:            bson.NewObjectID(),
		Name:          "Go Meetup",
		Description:   "monthly",
		UserID:        bson.NewObjectID(),
		User:          &entity.User{Name: "owner"},
		StartDateTime: time.Now(),
		IsPermitted:   true,
		Favorite:      []entity.Favorite{{UserID: bson.NewObjectID()}},
		CreatedAt:     time.Now(),
	}

	set := eventUpdateDocument(event)

	assert.Equal(t, "Go Meetup", set["name"])
	assert.Equal(t, "monthly", set["description"])
	assert.Contains(t, set, "startDateTime")

	// Membership, ownership and the moderation gate have their own write
	// paths and must never appear in an owner edit.
	for _, field := range []string{"favorite", "user", "userId", "isPermitted", "_id", "createdAt"} {
		assert.NotContains(t, set, field)
	}
}

func TestEventUpdateDocumentSkipsZeroFields(t *testing.T) {
	set := eventUpdateDocument(entity.Event{ID: bson.NewObjectID()})
	assert.Empty(t, set)
}
