package repository

import (
	"context"
	"time"

	"github.com/evently-app/evently/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Vote directions map to the review's membership lists.
const (
	VoteFieldLike    = "like"
	VoteFieldDisLike = "disLike"
)

type ReviewRepository struct {
	mongoClient *mongo.Client
	dbName      string
}

func NewReviewRepository(mongoClient *mongo.Client, dbName string) *ReviewRepository {
	return &ReviewRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
	}
}

func (r *ReviewRepository) collection() *mongo.Collection {
	return r.mongoClient.Database(r.dbName).Collection("reviews")
}

func (r *ReviewRepository) Create(ctx context.Context, review entity.Review) (*entity.Review, error) {
	review.ID = bson.NewObjectID()
	review.CreatedAt = time.Now().UTC()
	if review.Like == nil {
		review.Like = []entity.Vote{}
	}
	if review.DisLike == nil {
		review.DisLike = []entity.Vote{}
	}

	_, err := r.collection().InsertOne(ctx, review)
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *ReviewRepository) FindOneByID(ctx context.Context, ID bson.ObjectID) (*entity.Review, error) {
	result := r.collection().FindOne(ctx, bson.M{"_id": ID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var review *entity.Review
	err := result.Decode(&review)
	if err != nil {
		return nil, err
	}

	return review, nil
}

// ExistsByEventIDAndUserID reports whether the user already reviewed the event.
func (r *ReviewRepository) ExistsByEventIDAndUserID(ctx context.Context, eventID, userID bson.ObjectID) (bool, error) {
	count, err := r.collection().CountDocuments(ctx, bson.M{
		"eventId": eventID,
		"userId":  userID,
	})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// FindManyByEventID lists an event's reviews, most liked first, with author
// and event resolved.
func (r *ReviewRepository) FindManyByEventID(ctx context.Context, eventID bson.ObjectID) ([]*entity.Review, error) {
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
			"$lookup": bson.M{
				"from":         "users",
				"localField":   "userId",
				"foreignField": "_id",
				"as":           "user",
			},
		},
		bson.M{
			"$unwind": bson.M{
				"path":                       "$user",
				"preserveNullAndEmptyArrays": true,
			},
		},
		bson.M{
			"$addFields": bson.M{
				"likeCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$like", bson.A{}}}},
			},
		},
		bson.M{
			"$sort": bson.M{"likeCount": -1},
		},
		bson.M{
			"$unset": "likeCount",
		},
	}

	cur, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var reviews []*entity.Review
	err = cur.All(ctx, &reviews)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// PushVote adds the voter to one direction list. The guard filter keeps the
// list a set; a voter already present yields mongo.ErrNoDocuments.
func (r *ReviewRepository) PushVote(ctx context.Context, reviewID, userID bson.ObjectID, field string) (*entity.Review, error) {
	filter := bson.M{
		"_id":             reviewID,
		field + ".userId": bson.M{"$ne": userID},
	}

	update := bson.M{
		"$push": bson.M{
			field: bson.M{"userId": userID},
		},
	}

	return r.findOneAndUpdate(ctx, filter, update)
}

// PullVote removes the voter from one direction list.
func (r *ReviewRepository) PullVote(ctx context.Context, reviewID, userID bson.ObjectID, field string) (*entity.Review, error) {
	filter := bson.M{"_id": reviewID}

	update := bson.M{
		"$pull": bson.M{
			field: bson.M{"userId": userID},
		},
	}

	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *ReviewRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*entity.Review, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	result := r.collection().FindOneAndUpdate(ctx, filter, update, opts)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var review *entity.Review
	err := result.Decode(&review)
	if err != nil {
		return nil, err
	}

	return review, nil
}
