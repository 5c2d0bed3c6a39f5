package repository

import (
	"context"
	"time"

	"github.com/evently-app/evently/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type EventRepository struct {
	mongoClient *mongo.Client
	dbName      string
}

func NewEventRepository(mongoClient *mongo.Client, dbName string) *EventRepository {
	return &EventRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
	}
}

func (r *EventRepository) collection() *mongo.Collection {
	return r.mongoClient.Database(r.dbName).Collection("events")
}

func (r *EventRepository) FindOneByID(ctx context.Context, ID bson.ObjectID) (*entity.Event, error) {
	events, err := r.find(ctx, bson.M{"_id": ID})
	if err != nil {
		return nil, err
	}

	return events[0], nil
}

func (r *EventRepository) FindOneByIDAndUserID(ctx context.Context, ID, userID bson.ObjectID) (*entity.Event, error) {
	events, err := r.find(ctx, bson.M{"_id": ID, "userId": userID})
	if err != nil {
		return nil, err
	}

	return events[0], nil
}

// FindManyFavoritedBy returns every event the user has in its favorite list.
func (r *EventRepository) FindManyFavoritedBy(ctx context.Context, userID bson.ObjectID) ([]*entity.Event, error) {
	return r.findAllowEmpty(
		ctx,
		bson.M{"favorite.userId": userID},
		bson.M{"$sort": bson.M{"startDateTime": 1}},
	)
}

// FindManyTrending returns permitted events that have not started yet,
// most favorited first.
func (r *EventRepository) FindManyTrending(ctx context.Context, nowUTC time.Time) ([]*entity.Event, error) {
	return r.findAllowEmpty(
		ctx,
		bson.M{
			"startDateTime": bson.M{"$gt": nowUTC},
			"isPermitted":   true,
		},
		bson.M{
			"$addFields": bson.M{
				"favoriteCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$favorite", bson.A{}}}},
			},
		},
		bson.M{"$sort": bson.M{"favoriteCount": -1}},
		bson.M{"$unset": "favoriteCount"},
	)
}

func (r *EventRepository) find(ctx context.Context, m bson.M, opts ...bson.M) ([]*entity.Event, error) {
	events, err := r.findAllowEmpty(ctx, m, opts...)
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return events, nil
}

func (r *EventRepository) findAllowEmpty(ctx context.Context, m bson.M, opts ...bson.M) ([]*entity.Event, error) {
	pipeline := bson.A{
		bson.M{
			"$match": m,
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
	}

	for _, o := range opts {
		pipeline = append(pipeline, o)
	}

	cur, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var events []*entity.Event
	err = cur.All(ctx, &events)
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) Create(ctx context.Context, event entity.Event) (*entity.Event, error) {
	event.ID = bson.NewObjectID()
	event.CreatedAt = time.Now().UTC()
	if event.Favorite == nil {
		event.Favorite = []entity.Favorite{}
	}

	_, err := r.collection().InsertOne(ctx, event)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// UpdateOne writes owner edits. The $set document is built field by field:
// the favorite list is mutated only through Push/PullFavorite, and the
// isPermitted gate only through moderation, so neither is ever written here.
func (r *EventRepository) UpdateOne(ctx context.Context, event entity.Event) (*entity.Event, error) {
	set := eventUpdateDocument(event)
	if len(set) == 0 {
		return r.FindOneByID(ctx, event.ID)
	}

	filter := bson.M{"_id": event.ID}
	update := bson.M{"$set": set}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	result := r.collection().FindOneAndUpdate(ctx, filter, update, opts)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var newEvent *entity.Event
	err := result.Decode(&newEvent)
	if err != nil {
		return nil, err
	}

	return r.FindOneByID(ctx, newEvent.ID)
}

func eventUpdateDocument(event entity.Event) bson.M {
	set := bson.M{}
	if event.Name != "" {
		set["name"] = event.Name
	}
	if event.Description != "" {
		set["description"] = event.Description
	}
	if event.Banner != "" {
		set["banner"] = event.Banner
	}
	if !event.StartDateTime.IsZero() {
		set["startDateTime"] = event.StartDateTime
	}
	if !event.EndDateTime.IsZero() {
		set["endDateTime"] = event.EndDateTime
	}
	if event.Location != nil {
		set["location"] = event.Location
	}
	return set
}

// PushFavorite adds userID to the event's favorite list. The filter guard
// keeps the list a set: a user already present matches nothing and the
// returned error is mongo.ErrNoDocuments.
func (r *EventRepository) PushFavorite(ctx context.Context, eventID, userID bson.ObjectID) (*entity.Event, error) {
	filter := bson.M{
		"_id":             eventID,
		"favorite.userId": bson.M{"$ne": userID},
	}

	update := bson.M{
		"$push": bson.M{
			"favorite": bson.M{"userId": userID},
		},
	}

	return r.findOneAndUpdate(ctx, filter, update)
}

// PullFavorite removes userID from the event's favorite list.
func (r *EventRepository) PullFavorite(ctx context.Context, eventID, userID bson.ObjectID) (*entity.Event, error) {
	filter := bson.M{"_id": eventID}

	update := bson.M{
		"$pull": bson.M{
			"favorite": bson.M{"userId": userID},
		},
	}

	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *EventRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*entity.Event, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	result := r.collection().FindOneAndUpdate(ctx, filter, update, opts)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var event *entity.Event
	err := result.Decode(&event)
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (r *EventRepository) DeleteOneByID(ctx context.Context, ID bson.ObjectID) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": ID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
