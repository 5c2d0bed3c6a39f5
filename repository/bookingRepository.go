package repository

import (
	"context"
	"time"

	"github.com/evently-app/evently/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type BookingRepository struct {
	mongoClient *mongo.Client
	dbName      string
}

func NewBookingRepository(mongoClient *mongo.Client, dbName string) *BookingRepository {
	return &BookingRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
	}
}

func (r *BookingRepository) collection() *mongo.Collection {
	return r.mongoClient.Database(r.dbName).Collection("bookings")
}

func (r *BookingRepository) Create(ctx context.Context, userID, eventID bson.ObjectID) (*entity.Booking, error) {
	booking := entity.Booking{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		EventID:   eventID,
		Status:    entity.BookingStatusActive,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.collection().InsertOne(ctx, booking)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// ExistsActive reports whether the user already holds an active booking for
// the event.
func (r *BookingRepository) ExistsActive(ctx context.Context, userID, eventID bson.ObjectID) (bool, error) {
	count, err := r.collection().CountDocuments(ctx, bson.M{
		"userId":  userID,
		"eventId": eventID,
		"status":  entity.BookingStatusActive,
	})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CancelOneByIDAndUserID flips the booking to cancelled. The booking must
// belong to userID; a foreign or missing booking yields mongo.ErrNoDocuments.
// Cancelling an already-cancelled booking just returns it unchanged.
func (r *BookingRepository) CancelOneByIDAndUserID(ctx context.Context, ID, userID bson.ObjectID) (*entity.Booking, error) {
	filter := bson.M{
		"_id":    ID,
		"userId": userID,
	}

	update := bson.M{
		"$set": bson.M{"status": entity.BookingStatusCancelled},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	result := r.collection().FindOneAndUpdate(ctx, filter, update, opts)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var booking *entity.Booking
	err := result.Decode(&booking)
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// FindManyByUserID returns one skip/limit window of the user's bookings with
// their events resolved, newest booking first.
func (r *BookingRepository) FindManyByUserID(ctx context.Context, userID bson.ObjectID, skip, limit int64) ([]*entity.Booking, error) {
	pipeline := bson.A{
		bson.M{
			"$match": bson.M{"userId": userID},
		},
		bson.M{
			"$sort": bson.M{"createdAt": -1},
		},
		bson.M{
			"$skip": skip,
		},
	}

	if limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": limit})
	}

	pipeline = append(pipeline,
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
	)

	cur, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var bookings []*entity.Booking
	err = cur.All(ctx, &bookings)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepository) CountByUserID(ctx context.Context, userID bson.ObjectID) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"userId": userID})
}
