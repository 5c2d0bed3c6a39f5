package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Event struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	Name        string `bson:"name,omitempty" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Banner      string `bson:"banner,omitempty" json:"banner,omitempty"`

	UserID bson.ObjectID `bson:"userId,omitempty" json:"userId"`
	User   *User         `bson:"user,omitempty" json:"user,omitempty"`

	StartDateTime time.Time `bson:"startDateTime,omitempty" json:"startDateTime"`
	EndDateTime   time.Time `bson:"endDateTime,omitempty" json:"endDateTime"`

	Location *Location `bson:"location,omitempty" json:"location,omitempty"`

	// IsPermitted gates visibility in public listings.
	IsPermitted bool `bson:"isPermitted" json:"isPermitted"`

	// Favorite holds one entry per favoriting user.
	Favorite []Favorite `bson:"favorite" json:"favorite"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
}

type Favorite struct {
	UserID bson.ObjectID `bson:"userId" json:"userId"`
}

func (e *Event) IsFavoritedBy(userID bson.ObjectID) bool {
	for _, f := range e.Favorite {
		if f.UserID == userID {
			return true
		}
	}
	return false
}
