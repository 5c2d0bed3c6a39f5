package service

import (
	"context"
	"time"

	"github.com/evently-app/evently/entity"
	"github.com/evently-app/evently/helpers"

	"github.com/google/uuid"
	"github.com/klauspost/lctime"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	followMessageTemplate  = "$1 started following your event $2 ($3)"
	bookingMessageTemplate = "$1 booked a spot at your event $2 ($3)"
)

const feedWriteTimeout = 5 * time.Second

// FeedWriter is the notification feed store boundary.
type FeedWriter interface {
	Append(ctx context.Context, userID string, notification entity.Notification) error
}

// Notifier is what the engagement services see: a best-effort dispatch that
// never reports failure back to the triggering action.
type Notifier interface {
	Dispatch(actor *entity.User, targetUserID bson.ObjectID, event *entity.Event, notificationType, typeID string)
}

type NotificationService struct {
	feed   FeedWriter
	locale string
}

func NewNotificationService(feed FeedWriter, locale string) *NotificationService {
	return &NotificationService{
		feed:   feed,
		locale: locale,
	}
}

// Dispatch builds the notification and writes it to the target user's feed in
// a detached goroutine. The caller's action has already succeeded; a failed
// write is logged and swallowed.
func (s *NotificationService) Dispatch(actor *entity.User, targetUserID bson.ObjectID, event *entity.Event, notificationType, typeID string) {
	notification := s.build(actor, event, notificationType, typeID)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), feedWriteTimeout)
		defer cancel()

		err := s.feed.Append(ctx, targetUserID.Hex(), notification)
		if err != nil {
			log.Error().Err(err).
				Str("targetUserId", targetUserID.Hex()).
				Str("type", notificationType).
				Msg("notification write failed")
		}
	}()
}

func (s *NotificationService) build(actor *entity.User, event *entity.Event, notificationType, typeID string) entity.Notification {
	var template string
	switch notificationType {
	case entity.NotificationTypeBooking:
		template = bookingMessageTemplate
	default:
		template = followMessageTemplate
	}

	var actorName, actorID, actorPhoto string
	if actor != nil {
		actorName = actor.Name
		actorID = actor.ID.Hex()
		actorPhoto = actor.ProfilePhoto
	}

	var eventName, eventPhoto string
	var eventDate string
	if event != nil {
		eventName = event.Name
		eventPhoto = event.Banner
		eventDate, _ = lctime.StrftimeLoc(s.locale, "%A, %d.%m.%Y %H:%M", event.StartDateTime)
	}

	return entity.Notification{
		ID:        uuid.NewString(),
		Message:   helpers.ReplacePlaceholders(template, actorName, eventName, eventDate),
		Timestamp: time.Now().UTC(),
		Payload: entity.NotificationPayload{
			EventName:    eventName,
			UserID:       actorID,
			ProfilePhoto: actorPhoto,
			EventPhoto:   eventPhoto,
			Type:         notificationType,
			TypeID:       typeID,
			Read:         false,
		},
	}
}
