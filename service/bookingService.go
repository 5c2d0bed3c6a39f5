package service

import (
	"context"
	"errors"
	"time"

	"github.com/evently-app/evently/apperror"
	"github.com/evently-app/evently/entity"
	"github.com/evently-app/evently/helpers"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Booking list scopes.
const (
	BookingScopeUpcoming = "upcoming"
	BookingScopePast     = "past"
	BookingScopeAll      = "all"
)

type bookingStore interface {
	Create(ctx context.Context, userID, eventID bson.ObjectID) (*entity.Booking, error)
	ExistsActive(ctx context.Context, userID, eventID bson.ObjectID) (bool, error)
	CancelOneByIDAndUserID(ctx context.Context, ID, userID bson.ObjectID) (*entity.Booking, error)
	FindManyByUserID(ctx context.Context, userID bson.ObjectID, skip, limit int64) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID bson.ObjectID) (int64, error)
}

type BookingService struct {
	bookingRepository bookingStore
	eventRepository   eventStore
	userRepository    actorStore
	notifier          Notifier
}

func NewBookingService(bookingRepository bookingStore, eventRepository eventStore, userRepository actorStore, notifier Notifier) *BookingService {
	return &BookingService{
		bookingRepository: bookingRepository,
		eventRepository:   eventRepository,
		userRepository:    userRepository,
		notifier:          notifier,
	}
}

// Book creates an active booking and notifies the event owner. A user holds
// at most one active booking per event.
func (s *BookingService) Book(ctx context.Context, actorID, eventID bson.ObjectID) (*entity.Booking, error) {
	event, err := s.eventRepository.FindOneByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("Event not found")
		}
		return nil, err
	}

	exists, err := s.bookingRepository.ExistsActive(ctx, actorID, eventID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflict("You have already booked this event")
	}

	booking, err := s.bookingRepository.Create(ctx, actorID, eventID)
	if err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, actorID, event, entity.NotificationTypeBooking, booking.ID.Hex())

	return booking, nil
}

// Cancel transitions the booking to cancelled. Cancellation is one-way and
// only the booking's owner may perform it; no notification is sent.
func (s *BookingService) Cancel(ctx context.Context, actorID, bookingID bson.ObjectID) (*entity.Booking, error) {
	booking, err := s.bookingRepository.CancelOneByIDAndUserID(ctx, bookingID, actorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewUnauthorized("you are not authorized")
		}
		return nil, err
	}

	return booking, nil
}

// List returns one page of the actor's bookings, partitioned by scope against
// the current instant. Partitioning happens in memory over the fetched page,
// so a page can come back shorter than the limit.
func (s *BookingService) List(ctx context.Context, actorID bson.ObjectID, scope string, q helpers.PageQuery) (helpers.Page[*entity.Booking], error) {
	var page helpers.Page[*entity.Booking]

	bookings, err := s.bookingRepository.FindManyByUserID(ctx, actorID, q.Skip, q.Limit)
	if err != nil {
		return page, err
	}

	totalCount, err := s.bookingRepository.CountByUserID(ctx, actorID)
	if err != nil {
		return page, err
	}

	bookings = partitionBookings(bookings, scope, time.Now().UTC())

	return helpers.Paginate(bookings, totalCount, q), nil
}

// partitionBookings keeps the bookings matching the requested time scope.
func partitionBookings(bookings []*entity.Booking, scope string, now time.Time) []*entity.Booking {
	if scope == BookingScopeAll || scope == "" {
		return bookings
	}

	filtered := make([]*entity.Booking, 0, len(bookings))
	for _, booking := range bookings {
		switch scope {
		case BookingScopeUpcoming:
			if booking.IsUpcoming(now) {
				filtered = append(filtered, booking)
			}
		case BookingScopePast:
			if booking.IsPast(now) {
				filtered = append(filtered, booking)
			}
		}
	}

	return filtered
}

func (s *BookingService) notifyOwner(ctx context.Context, actorID bson.ObjectID, event *entity.Event, notificationType, typeID string) {
	actor, err := s.userRepository.FindOneByID(ctx, actorID)
	if err != nil {
		log.Error().Err(err).Str("actorId", actorID.Hex()).Msg("actor lookup for notification failed")
		actor = nil
	}

	s.notifier.Dispatch(actor, event.UserID, event, notificationType, typeID)
}
