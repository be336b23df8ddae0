package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/Jason26214/MoviesApi/internal/apperr"
	"github.com/Jason26214/MoviesApi/internal/auth"
	"github.com/Jason26214/MoviesApi/internal/models"
	"github.com/Jason26214/MoviesApi/internal/storage"
)

// fakePosterStore records uploads without a MinIO server behind it.
type fakePosterStore struct {
	puts int
}

func (f *fakePosterStore) Put(ctx context.Context, movieID, filename, contentType string, r io.Reader, size int64) (string, error) {
	f.puts++
	return fmt.Sprintf("http://posters.test/%s_%s", movieID, filename), nil
}

var (
	adminActor = &auth.Actor{ID: "admin-id", Role: "admin"}
	userActor  = &auth.Actor{ID: "user-id", Role: "user"}
)

func newMovieService() (*MovieService, *storage.MemoryMovieStore, *fakePosterStore) {
	movies := storage.NewMemoryMovieStore()
	posters := &fakePosterStore{}
	return NewMovieService(movies, posters), movies, posters
}

func createMovieReq() models.CreateMovieRequest {
	return models.CreateMovieRequest{
		Title:       "Blade Runner",
		Description: "A blade runner must pursue and terminate four replicants.",
		Types:       []string{"sci-fi", "noir"},
	}
}

func TestCreateMovieStartsWithZeroAggregate(t *testing.T) {
	svc, _, _ := newMovieService()

	movie, err := svc.Create(context.Background(), adminActor, createMovieReq())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if movie.AverageRating != 0 {
		t.Fatalf("averageRating = %v, want 0", movie.AverageRating)
	}
	if movie.Reviews == nil || len(movie.Reviews) != 0 {
		t.Fatalf("reviews = %v, want empty list", movie.Reviews)
	}
}

func TestCreateMovieDeniedForNonAdmin(t *testing.T) {
	svc, movies, _ := newMovieService()
	ctx := context.Background()

	_, err := svc.Create(ctx, userActor, createMovieReq())
	if apperr.KindOf(err) != apperr.Forbidden {
		t.Fatalf("user create: %v, want Forbidden", err)
	}
	_, err = svc.Create(ctx, nil, createMovieReq())
	if apperr.KindOf(err) != apperr.Unauthenticated {
		t.Fatalf("anonymous create: %v, want Unauthenticated", err)
	}

	// Denied calls must leave no trace.
	all, _ := movies.List(ctx)
	if len(all) != 0 {
		t.Fatalf("store has %d movies after denied creates", len(all))
	}
}

func TestUpdateMovieAppliesOnlyPresentFields(t *testing.T) {
	svc, _, _ := newMovieService()
	ctx := context.Background()

	movie, err := svc.Create(ctx, adminActor, createMovieReq())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newTitle := "Blade Runner (Final Cut)"
	updated, err := svc.Update(ctx, adminActor, movie.ID.Hex(), models.UpdateMovieRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != newTitle {
		t.Fatalf("title = %q", updated.Title)
	}
	if updated.Description != movie.Description {
		t.Fatal("description changed by a title-only patch")
	}
	if len(updated.Types) != 2 {
		t.Fatal("types changed by a title-only patch")
	}
}

func TestUpdateMovieNotFound(t *testing.T) {
	svc, _, _ := newMovieService()
	title := "x"
	_, err := svc.Update(context.Background(), adminActor, "000000000000000000000000", models.UpdateMovieRequest{Title: &title})
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestDeleteMovieRemovesItAndItsReviews(t *testing.T) {
	svc, movies, _ := newMovieService()
	reviews := NewReviewService(movies)
	ctx := context.Background()

	movie, err := svc.Create(ctx, adminActor, createMovieReq())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	authorID := "64b0c1d2e3f4a5b6c7d8e9f0"
	review, err := reviews.Create(ctx, &auth.Actor{ID: authorID, Role: "user"}, movie.ID.Hex(), models.CreateReviewRequest{Rating: 5})
	if err != nil {
		t.Fatalf("review Create: %v", err)
	}

	if err := svc.Delete(ctx, adminActor, movie.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, movie.ID.Hex()); apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("movie still present: %v", err)
	}
	// Embedded lifecycle: the review went down with its movie.
	_, err = reviews.Update(ctx, adminActor, review.ID.Hex(), models.UpdateReviewRequest{})
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("review survived movie delete: %v", err)
	}
}

func TestAttachPoster(t *testing.T) {
	svc, _, posters := newMovieService()
	ctx := context.Background()

	movie, err := svc.Create(ctx, adminActor, createMovieReq())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	body := bytes.NewBufferString("png bytes")
	updated, err := svc.AttachPoster(ctx, adminActor, movie.ID.Hex(), "poster.png", "image/png", body, int64(body.Len()))
	if err != nil {
		t.Fatalf("AttachPoster: %v", err)
	}
	if updated.PosterURL == "" {
		t.Fatal("posterUrl not recorded")
	}
	if posters.puts != 1 {
		t.Fatalf("puts = %d, want 1", posters.puts)
	}
}

func TestAttachPosterUnknownMovieUploadsNothing(t *testing.T) {
	svc, _, posters := newMovieService()

	_, err := svc.AttachPoster(context.Background(), adminActor, "000000000000000000000000", "poster.png", "image/png", bytes.NewBufferString("x"), 1)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("got %v, want NotFound", err)
	}
	if posters.puts != 0 {
		t.Fatal("object uploaded for a missing movie")
	}
}
