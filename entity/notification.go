package entity

import "time"

const (
	NotificationTypeFollow  = "follow"
	NotificationTypeBooking = "booking"
)

// Notification is a feed document. It lives in the notification feed store,
// not in the record store, and is never mutated after it is written.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`

	Payload NotificationPayload `json:"payload"`
}

type NotificationPayload struct {
	EventName    string `json:"eventName,omitempty"`
	UserID       string `json:"userId,omitempty"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
	EventPhoto   string `json:"eventPhoto,omitempty"`
	Type         string `json:"type"`
	TypeID       string `json:"typeId"`
	Read         bool   `json:"read"`
}
