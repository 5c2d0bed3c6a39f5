package service

import (
	"context"
	"errors"

	"github.com/evently-app/evently/apperror"
	"github.com/evently-app/evently/entity"
	"github.com/evently-app/evently/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type reviewStore interface {
	Create(ctx context.Context, review entity.Review) (*entity.Review, error)
	FindOneByID(ctx context.Context, ID bson.ObjectID) (*entity.Review, error)
	ExistsByEventIDAndUserID(ctx context.Context, eventID, userID bson.ObjectID) (bool, error)
	FindManyByEventID(ctx context.Context, eventID bson.ObjectID) ([]*entity.Review, error)
	PushVote(ctx context.Context, reviewID, userID bson.ObjectID, field string) (*entity.Review, error)
	PullVote(ctx context.Context, reviewID, userID bson.ObjectID, field string) (*entity.Review, error)
}

type ReviewService struct {
	reviewRepository reviewStore
	eventRepository  eventStore
}

func NewReviewService(reviewRepository reviewStore, eventRepository eventStore) *ReviewService {
	return &ReviewService{
		reviewRepository: reviewRepository,
		eventRepository:  eventRepository,
	}
}

// Create inserts the actor's review for an event. One review per user per
// event.
func (s *ReviewService) Create(ctx context.Context, actorID, eventID bson.ObjectID, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperror.NewValidation("rating must be between 1 and 5")
	}

	_, err := s.eventRepository.FindOneByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("Event not found")
		}
		return nil, err
	}

	exists, err := s.reviewRepository.ExistsByEventIDAndUserID(ctx, eventID, actorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflict("You have already rated this event")
	}

	return s.reviewRepository.Create(ctx, entity.Review{
		EventID: eventID,
		UserID:  actorID,
		Rating:  rating,
		Comment: comment,
	})
}

// Vote applies a like or dislike. A repeated same-direction vote is
// rejected; the opposite-direction list is left untouched. Both flags false
// retracts the actor's like.
func (s *ReviewService) Vote(ctx context.Context, actorID, reviewID bson.ObjectID, isLike, isDisLike bool) (*entity.Review, error) {
	review, err := s.reviewRepository.FindOneByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("Review not found")
		}
		return nil, err
	}

	switch {
	case isLike:
		if review.HasLiked(actorID) {
			return nil, apperror.NewConflict("You already like this review")
		}
		return s.pushVote(ctx, reviewID, actorID, repository.VoteFieldLike)

	case isDisLike:
		if review.HasDisliked(actorID) {
			return nil, apperror.NewConflict("You already dislike this review")
		}
		return s.pushVote(ctx, reviewID, actorID, repository.VoteFieldDisLike)

	default:
		return s.reviewRepository.PullVote(ctx, reviewID, actorID, repository.VoteFieldLike)
	}
}

func (s *ReviewService) pushVote(ctx context.Context, reviewID, actorID bson.ObjectID, field string) (*entity.Review, error) {
	review, err := s.reviewRepository.PushVote(ctx, reviewID, actorID, field)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// The guard filter matched nothing: a concurrent request won the
		// same-direction race.
		return nil, apperror.NewConflict("You already voted on this review")
	}
	return review, err
}

// ListForEvent returns an event's reviews, most liked first.
func (s *ReviewService) ListForEvent(ctx context.Context, eventID bson.ObjectID) ([]*entity.Review, error) {
	_, err := s.eventRepository.FindOneByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("Event not found")
		}
		return nil, err
	}

	return s.reviewRepository.FindManyByEventID(ctx, eventID)
}
