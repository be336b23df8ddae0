package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jason26214/MoviesApi/internal/apperr"
	"github.com/Jason26214/MoviesApi/internal/models"
)

// casRetries bounds the optimistic-concurrency retry loop. Contention on a
// single movie document is rare; hitting the bound means something is
// hammering one document and the request should fail rather than spin.
const casRetries = 5

type MongoMovieStore struct {
	collection *mongo.Collection
}

func NewMongoMovieStore(db *mongo.Database) *MongoMovieStore {
	return &MongoMovieStore{collection: db.Collection("movies")}
}

func movieObjectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.New(apperr.Validation, "invalid movie id")
	}
	return objID, nil
}

func (s *MongoMovieStore) List(ctx context.Context) ([]models.Movie, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "failed to fetch movies")
	}
	defer cursor.Close(ctx)

	movies := []models.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "failed to decode movies")
	}
	return movies, nil
}

func (s *MongoMovieStore) GetByID(ctx context.Context, id string) (models.Movie, error) {
	objID, err := movieObjectID(id)
	if err != nil {
		return models.Movie{}, err
	}
	return s.findOne(ctx, bson.M{"_id": objID})
}

func (s *MongoMovieStore) findOne(ctx context.Context, filter bson.M) (models.Movie, error) {
	var movie models.Movie
	err := s.collection.FindOne(ctx, filter).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Movie{}, apperr.New(apperr.NotFound, "movie not found")
	}
	if err != nil {
		return models.Movie{}, apperr.Wrap(err, apperr.Internal, "failed to fetch movie")
	}
	return movie, nil
}

func (s *MongoMovieStore) Insert(ctx context.Context, movie *models.Movie) error {
	if movie.ID.IsZero() {
		movie.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, movie); err != nil {
		return apperr.Wrap(err, apperr.Internal, "failed to create movie")
	}
	return nil
}

func (s *MongoMovieStore) Mutate(ctx context.Context, id string, fn func(*models.Movie) error) (models.Movie, error) {
	objID, err := movieObjectID(id)
	if err != nil {
		return models.Movie{}, err
	}
	return s.mutate(ctx, bson.M{"_id": objID}, fn)
}

func (s *MongoMovieStore) MutateByReviewID(ctx context.Context, reviewID string, fn func(*models.Movie) error) (models.Movie, error) {
	objID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return models.Movie{}, apperr.New(apperr.Validation, "invalid review id")
	}
	movie, err := s.mutate(ctx, bson.M{"reviews._id": objID}, fn)
	if err != nil && apperr.KindOf(err) == apperr.NotFound {
		return models.Movie{}, apperr.New(apperr.NotFound, "review not found")
	}
	return movie, err
}

// mutate performs a compare-and-swap on the movie's version counter. If a
// concurrent writer got there first the replace matches nothing and the whole
// read-modify-write is retried against the fresh document.
func (s *MongoMovieStore) mutate(ctx context.Context, filter bson.M, fn func(*models.Movie) error) (models.Movie, error) {
	for attempt := 0; attempt < casRetries; attempt++ {
		movie, err := s.findOne(ctx, filter)
		if err != nil {
			return models.Movie{}, err
		}

		version := movie.Version
		if err := fn(&movie); err != nil {
			return models.Movie{}, err
		}
		movie.Version = version + 1
		movie.UpdatedAt = time.Now().UTC()

		res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": movie.ID, "version": version}, movie)
		if err != nil {
			return models.Movie{}, apperr.Wrap(err, apperr.Internal, "failed to update movie")
		}
		if res.MatchedCount == 1 {
			return movie, nil
		}
	}
	return models.Movie{}, apperr.New(apperr.Internal, fmt.Sprintf("movie update contended %d times, giving up", casRetries))
}

func (s *MongoMovieStore) Delete(ctx context.Context, id string) error {
	objID, err := movieObjectID(id)
	if err != nil {
		return err
	}
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperr.Wrap(err, apperr.Internal, "failed to delete movie")
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "movie not found")
	}
	return nil
}
