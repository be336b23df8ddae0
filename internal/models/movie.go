package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is one document with its reviews embedded. AverageRating is derived
// from the embedded reviews and is never accepted from a client. Version is
// the optimistic-concurrency counter used by the Mongo repository; it is not
// part of the API surface.
type Movie struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Types         []string           `bson:"types" json:"types"`
	AverageRating float64            `bson:"average_rating" json:"averageRating"`
	Reviews       []Review           `bson:"reviews" json:"reviews"`
	PosterURL     string             `bson:"poster_url,omitempty" json:"posterUrl,omitempty"`
	Version       int64              `bson:"version" json:"-"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Review lives inside its parent movie; deleting the movie deletes it.
// AuthorID is immutable after creation and drives ownership checks.
type Review struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Content   string             `bson:"content" json:"content"`
	Rating    int                `bson:"rating" json:"rating"`
	AuthorID  primitive.ObjectID `bson:"author_id" json:"authorId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CreateMovieRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Types       []string `json:"types" validate:"required,min=1,dive,required"`
}

// UpdateMovieRequest uses pointers so absent fields are left untouched.
type UpdateMovieRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Types       []string `json:"types,omitempty" validate:"omitempty,min=1,dive,required"`
}

type CreateReviewRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

type UpdateReviewRequest struct {
	Content *string `json:"content,omitempty"`
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}
