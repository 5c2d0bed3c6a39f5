package service

import (
	"context"
	"errors"

	"github.com/evently-app/evently/apperror"
	"github.com/evently-app/evently/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type userStore interface {
	FindOneByID(ctx context.Context, ID bson.ObjectID) (*entity.User, error)
	IsEmailTaken(ctx context.Context, email string, excludeID bson.ObjectID) (bool, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Create(ctx context.Context, user entity.User) (*entity.User, error)
	UpdateOne(ctx context.Context, user entity.User) (*entity.User, error)
	DeleteOneByID(ctx context.Context, ID bson.ObjectID) error
}

type UserService struct {
	userRepository userStore
}

func NewUserService(userRepository userStore) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

func (s *UserService) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	if user.Email == "" || user.Name == "" {
		return nil, apperror.NewValidation("name and email are required")
	}

	taken, err := s.userRepository.IsEmailTaken(ctx, user.Email, bson.ObjectID{})
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.NewValidation("Email already taken")
	}

	return s.userRepository.Create(ctx, user)
}

func (s *UserService) FindOneByID(ctx context.Context, ID bson.ObjectID) (*entity.User, error) {
	user, err := s.userRepository.FindOneByID(ctx, ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("User not found")
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]*entity.User, error) {
	return s.userRepository.FindAll(ctx)
}

func (s *UserService) Update(ctx context.Context, ID bson.ObjectID, update entity.User) (*entity.User, error) {
	user, err := s.FindOneByID(ctx, ID)
	if err != nil {
		return nil, err
	}

	if update.Email != "" && update.Email != user.Email {
		taken, err := s.userRepository.IsEmailTaken(ctx, update.Email, ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperror.NewValidation("Email already taken")
		}
	}

	update.ID = user.ID
	return s.userRepository.UpdateOne(ctx, update)
}

func (s *UserService) Delete(ctx context.Context, ID bson.ObjectID) (*entity.User, error) {
	user, err := s.FindOneByID(ctx, ID)
	if err != nil {
		return nil, err
	}

	err = s.userRepository.DeleteOneByID(ctx, ID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
