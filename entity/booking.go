package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	UserID  bson.ObjectID `bson:"userId,omitempty" json:"userId"`
	EventID bson.ObjectID `bson:"eventId,omitempty" json:"eventId"`
	Event   *Event        `bson:"event,omitempty" json:"event,omitempty"`

	Status string `bson:"status,omitempty" json:"status"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
}

// IsUpcoming reports whether the booked event has not started yet.
// Bookings without a resolved event fall into neither partition.
func (b *Booking) IsUpcoming(now time.Time) bool {
	return b.Event != nil && !b.Event.StartDateTime.Before(now)
}

// IsPast reports whether the booked event has already ended.
func (b *Booking) IsPast(now time.Time) bool {
	return b.Event != nil && b.Event.EndDateTime.Before(now)
}
