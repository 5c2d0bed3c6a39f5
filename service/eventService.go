package service

import (
	"context"
	"errors"
	"time"

	"github.com/evently-app/evently/apperror"
	"github.com/evently-app/evently/entity"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type eventStore interface {
	FindOneByID(ctx context.Context, ID bson.ObjectID) (*entity.Event, error)
	Create(ctx context.Context, event entity.Event) (*entity.Event, error)
	UpdateOne(ctx context.Context, event entity.Event) (*entity.Event, error)
	PushFavorite(ctx context.Context, eventID, userID bson.ObjectID) (*entity.Event, error)
	PullFavorite(ctx context.Context, eventID, userID bson.ObjectID) (*entity.Event, error)
	FindManyFavoritedBy(ctx context.Context, userID bson.ObjectID) ([]*entity.Event, error)
	FindManyTrending(ctx context.Context, nowUTC time.Time) ([]*entity.Event, error)
}

type followStore interface {
	FindOneByEventIDAndFollowerID(ctx context.Context, eventID, followerID bson.ObjectID) (*entity.Follow, error)
	FindManyByEventID(ctx context.Context, eventID bson.ObjectID) ([]*entity.Follow, error)
	Create(ctx context.Context, eventID, followerID bson.ObjectID) (*entity.Follow, error)
	DeleteOneByEventIDAndFollowerID(ctx context.Context, eventID, followerID bson.ObjectID) error
}

type actorStore interface {
	FindOneByID(ctx context.Context, ID bson.ObjectID) (*entity.User, error)
}

// FollowState is what follow/unfollow return to the caller.
type FollowState struct {
	Following bool           `json:"following"`
	Follow    *entity.Follow `json:"follow,omitempty"`
}

type EventService struct {
	eventRepository  eventStore
	followRepository followStore
	userRepository   actorStore
	notifier         Notifier
}

func NewEventService(eventRepository eventStore, followRepository followStore, userRepository actorStore, notifier Notifier) *EventService {
	return &EventService{
		eventRepository:  eventRepository,
		followRepository: followRepository,
		userRepository:   userRepository,
		notifier:         notifier,
	}
}

func (s *EventService) Create(ctx context.Context, actorID bson.ObjectID, event entity.Event) (*entity.Event, error) {
	if !event.Location.Valid() {
		return nil, apperror.NewValidation("Kindly Allow Your Location")
	}
	if event.Name == "" || event.StartDateTime.IsZero() || event.EndDateTime.IsZero() {
		return nil, apperror.NewValidation("name, startDateTime and endDateTime are required")
	}

	event.UserID = actorID
	return s.eventRepository.Create(ctx, event)
}

// Update applies owner edits. Only the owner may modify an event.
func (s *EventService) Update(ctx context.Context, actorID, eventID bson.ObjectID, update entity.Event) (*entity.Event, error) {
	event, err := s.eventRepository.FindOneByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("Event not found")
		}
		return nil, err
	}

	if event.UserID != actorID {
		return nil, apperror.NewUnauthorized("you are not authorized")
	}

	if update.Location != nil && !update.Location.Valid() {
		return nil, apperror.NewValidation("Kindly Allow Your Location")
	}

	update.ID = event.ID
	update.UserID = event.UserID
	return s.eventRepository.UpdateOne(ctx, update)
}

// FollowEvent toggles the actor's follow relation on the event. A transition
// to "followed" notifies the event owner; the reverse transition does not.
func (s *EventService) FollowEvent(ctx context.Context, actorID, eventID bson.ObjectID) (*FollowState, error) {
	event, err := s.eventRepository.FindOneByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("Event not found")
		}
		return nil, err
	}

	_, err = s.followRepository.FindOneByEventIDAndFollowerID(ctx, eventID, actorID)
	if err == nil {
		// Already following: the toggle removes the relation.
		err = s.followRepository.DeleteOneByEventIDAndFollowerID(ctx, eventID, actorID)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return &FollowState{Following: false}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	follow, err := s.followRepository.Create(ctx, eventID, actorID)
	if err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, actorID, event, entity.NotificationTypeFollow, follow.ID.Hex())

	return &FollowState{Following: true, Follow: follow}, nil
}

// UnfollowEvent removes the follow relation. No notification either way.
func (s *EventService) UnfollowEvent(ctx context.Context, actorID, eventID bson.ObjectID) (*FollowState, error) {
	_, err := s.eventRepository.FindOneByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("Event not found")
		}
		return nil, err
	}

	err = s.followRepository.DeleteOneByEventIDAndFollowerID(ctx, eventID, actorID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return &FollowState{Following: false}, nil
}

// FavoriteToggle adds the actor to the event's favorite list, or removes them
// if already present. The store-side filter guard keeps the list a set even
// when two requests race; last writer wins.
func (s *EventService) FavoriteToggle(ctx context.Context, actorID, eventID bson.ObjectID) (*entity.Event, error) {
	event, err := s.eventRepository.FindOneByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("Event not found")
		}
		return nil, err
	}

	if event.IsFavoritedBy(actorID) {
		return s.eventRepository.PullFavorite(ctx, eventID, actorID)
	}

	updated, err := s.eventRepository.PushFavorite(ctx, eventID, actorID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Lost a toggle race: the membership was added in between. The guard
		// filter kept the list duplicate-free, so just return current state.
		return s.eventRepository.FindOneByID(ctx, eventID)
	}
	return updated, err
}

func (s *EventService) Favorites(ctx context.Context, actorID bson.ObjectID) ([]*entity.Event, error) {
	return s.eventRepository.FindManyFavoritedBy(ctx, actorID)
}

func (s *EventService) Trending(ctx context.Context) ([]*entity.Event, error) {
	return s.eventRepository.FindManyTrending(ctx, time.Now().UTC())
}

func (s *EventService) Followers(ctx context.Context, eventID bson.ObjectID) ([]*entity.Follow, error) {
	_, err := s.eventRepository.FindOneByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("Event not found")
		}
		return nil, err
	}

	return s.followRepository.FindManyByEventID(ctx, eventID)
}

// notifyOwner resolves the actor and hands the notification to the dispatcher.
// The engagement action has already succeeded, so nothing here may fail it.
func (s *EventService) notifyOwner(ctx context.Context, actorID bson.ObjectID, event *entity.Event, notificationType, typeID string) {
	actor, err := s.userRepository.FindOneByID(ctx, actorID)
	if err != nil {
		log.Error().Err(err).Str("actorId", actorID.Hex()).Msg("actor lookup for notification failed")
		actor = nil
	}

	s.notifier.Dispatch(actor, event.UserID, event, notificationType, typeID)
}
