package repository

import (
	"context"
	"time"

	"github.com/evently-app/evently/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type UserRepository struct {
	mongoClient *mongo.Client
	dbName      string
}

func NewUserRepository(mongoClient *mongo.Client, dbName string) *UserRepository {
	return &UserRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
	}
}

func (r *UserRepository) collection() *mongo.Collection {
	return r.mongoClient.Database(r.dbName).Collection("users")
}

func (r *UserRepository) FindOneByID(ctx context.Context, ID bson.ObjectID) (*entity.User, error) {
	result := r.collection().FindOne(ctx, bson.M{"_id": ID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user *entity.User
	err := result.Decode(&user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindOneByEmail(ctx context.Context, email string) (*entity.User, error) {
	result := r.collection().FindOne(ctx, bson.M{"email": email})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user *entity.User
	err := result.Decode(&user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// IsEmailTaken reports whether another user than excludeID already uses email.
func (r *UserRepository) IsEmailTaken(ctx context.Context, email string, excludeID bson.ObjectID) (bool, error) {
	filter := bson.M{"email": email}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	count, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cur, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var users []*entity.User
	err = cur.All(ctx, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now().UTC()

	_, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdateOne(ctx context.Context, user entity.User) (*entity.User, error) {
	filter := bson.M{"_id": user.ID}

	update := bson.M{
		"$set": user,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	result := r.collection().FindOneAndUpdate(ctx, filter, update, opts)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var newUser *entity.User
	err := result.Decode(&newUser)
	if err != nil {
		return nil, err
	}

	return newUser, nil
}

func (r *UserRepository) DeleteOneByID(ctx context.Context, ID bson.ObjectID) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": ID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
