package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Review struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	EventID bson.ObjectID `bson:"eventId,omitempty" json:"eventId"`
	Event   *Event        `bson:"event,omitempty" json:"event,omitempty"`

	UserID bson.ObjectID `bson:"userId,omitempty" json:"userId"`
	User   *User         `bson:"user,omitempty" json:"user,omitempty"`

	Rating  int    `bson:"rating,omitempty" json:"rating"`
	Comment string `bson:"comment,omitempty" json:"comment,omitempty"`

	Like    []Vote `bson:"like" json:"like"`
	DisLike []Vote `bson:"disLike" json:"disLike"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
}

type Vote struct {
	UserID bson.ObjectID `bson:"userId" json:"userId"`
}

func (r *Review) HasLiked(userID bson.ObjectID) bool {
	return hasVote(r.Like, userID)
}

func (r *Review) HasDisliked(userID bson.ObjectID) bool {
	return hasVote(r.DisLike, userID)
}

func hasVote(votes []Vote, userID bson.ObjectID) bool {
	for _, v := range votes {
		if v.UserID == userID {
			return true
		}
	}
	return false
}
