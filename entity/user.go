package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	Name         string `bson:"name,omitempty" json:"name"`
	Email        string `bson:"email,omitempty" json:"email"`
	Role         string `bson:"role,omitempty" json:"role"`
	ProfilePhoto string `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`

	Location *Location `bson:"location,omitempty" json:"location,omitempty"`

	OTP       string     `bson:"otp,omitempty" json:"-"`
	OTPExpiry *time.Time `bson:"otpExpiry,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
}

type Location struct {
	Name        string    `bson:"name,omitempty" json:"name"`
	Address     string    `bson:"address,omitempty" json:"address"`
	Coordinates []float64 `bson:"coordinates,omitempty" json:"coordinates"`
}

// Valid reports whether the location carries a usable coordinate pair.
func (l *Location) Valid() bool {
	return l != nil && len(l.Coordinates) == 2 && l.Name != "" && l.Address != ""
}
