package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Jason26214/MoviesApi/internal/apperr"
	"github.com/Jason26214/MoviesApi/internal/models"
)

type MongoUserStore struct {
	collection *mongo.Collection
}

// NewMongoUserStore ensures the unique username index exists; username
// uniqueness is enforced by the store, not by a pre-check in the service.
func NewMongoUserStore(ctx context.Context, db *mongo.Database) (*MongoUserStore, error) {
	collection := db.Collection("users")

	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err := collection.Indexes().CreateOne(indexCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &MongoUserStore{collection: collection}, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.New(apperr.Conflict, "username already taken")
	}
	if err != nil {
		return apperr.Wrap(err, apperr.Internal, "failed to create user")
	}
	return nil
}

func (s *MongoUserStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, apperr.New(apperr.NotFound, "user not found")
	}
	if err != nil {
		return models.User{}, apperr.Wrap(err, apperr.Internal, "failed to fetch user")
	}
	return user, nil
}

func (s *MongoUserStore) GetByID(ctx context.Context, id string) (models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, apperr.New(apperr.Validation, "invalid user id")
	}
	var user models.User
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, apperr.New(apperr.NotFound, "user not found")
	}
	if err != nil {
		return models.User{}, apperr.Wrap(err, apperr.Internal, "failed to fetch user")
	}
	return user, nil
}

func (s *MongoUserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "failed to fetch users")
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "failed to decode users")
	}
	return users, nil
}
