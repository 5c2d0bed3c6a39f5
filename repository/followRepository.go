package repository

import (
	"context"
	"errors"
	"time"

	"github.com/evently-app/evently/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type FollowRepository struct {
	mongoClient *mongo.Client
	dbName      string
}

func NewFollowRepository(mongoClient *mongo.Client, dbName string) *FollowRepository {
	return &FollowRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
	}
}

func (r *FollowRepository) collection() *mongo.Collection {
	return r.mongoClient.Database(r.dbName).Collection("follows")
}

func (r *FollowRepository) FindOneByEventIDAndFollowerID(ctx context.Context, eventID, followerID bson.ObjectID) (*entity.Follow, error) {
	result := r.collection().FindOne(ctx, bson.M{
		"eventId":        eventID,
		"followerUserId": followerID,
	})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var follow *entity.Follow
	err := result.Decode(&follow)
	if err != nil {
		return nil, err
	}

	return follow, nil
}

// FindManyByEventID lists an event's followers, newest first, with the event
// resolved.
func (r *FollowRepository) FindManyByEventID(ctx context.Context, eventID bson.ObjectID) ([]*entity.Follow, error) {
	pipeline := bson.A{
		bson.M{
			"$match": bson.M{"eventId": eventID},
		},
		bson.M{
			"$lookup": bson.M{
				"from":         "events",
				"localField":   "eventId",
				"foreignField": "_id",
				"as":           "event",
			},
		},
		bson.M{
			"$unwind": bson.M{
				"path":                       "$event",
				"preserveNullAndEmptyArrays": true,
			},
		},
		bson.M{
			"$sort": bson.M{"createdAt": -1},
		},
	}

	cur, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var follows []*entity.Follow
	err = cur.All(ctx, &follows)
	if err != nil {
		return nil, err
	}

	return follows, nil
}

// Create inserts the follow relation unless the pair already exists.
func (r *FollowRepository) Create(ctx context.Context, eventID, followerID bson.ObjectID) (*entity.Follow, error) {
	existing, err := r.FindOneByEventIDAndFollowerID(ctx, eventID, followerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	follow := entity.Follow{
		ID:             bson.NewObjectID(),
		EventID:        eventID,
		FollowerUserID: followerID,
		CreatedAt:      time.Now().UTC(),
	}

	_, err = r.collection().InsertOne(ctx, follow)
	if err != nil {
		return nil, err
	}

	return &follow, nil
}

func (r *FollowRepository) DeleteOneByEventIDAndFollowerID(ctx context.Context, eventID, followerID bson.ObjectID) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{
		"eventId":        eventID,
		"followerUserId": followerID,
	})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
