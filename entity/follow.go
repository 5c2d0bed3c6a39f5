package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Follow links a follower to an event. At most one document exists per
// (eventId, followerUserId) pair.
type Follow struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	EventID bson.ObjectID `bson:"eventId,omitempty" json:"eventId"`
	Event   *Event        `bson:"event,omitempty" json:"event,omitempty"`

	FollowerUserID bson.ObjectID `bson:"followerUserId,omitempty" json:"followerUserId"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
}
