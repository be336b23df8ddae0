package rating

import (
	"testing"

	"github.com/Jason26214/MoviesApi/internal/models"
)

func reviewsWithRatings(ratings ...int) []models.Review {
	reviews := make([]models.Review, len(ratings))
	for i, r := range ratings {
		reviews[i].Rating = r
	}
	return reviews
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "empty list is zero", ratings: nil, want: 0},
		{name: "single review", ratings: []int{4}, want: 4},
		{name: "whole mean", ratings: []int{3, 5}, want: 4},
		{name: "two decimals", ratings: []int{5, 4, 4}, want: 4.33},
		{name: "repeating third rounds", ratings: []int{1, 2, 2}, want: 1.67},
		// mean is exactly 2.125; half-away-from-zero rounds up to 2.13
		{name: "tie rounds away from zero", ratings: []int{1, 2, 2, 2, 2, 2, 3, 3}, want: 2.13},
		{name: "all maximum", ratings: []int{5, 5, 5, 5}, want: 5},
		{name: "all minimum", ratings: []int{1, 1}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Average(reviewsWithRatings(tt.ratings...))
			if got != tt.want {
				t.Fatalf("Average(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}

func TestAverageIsIdempotent(t *testing.T) {
	reviews := reviewsWithRatings(2, 3, 5, 4, 1)
	first := Average(reviews)
	second := Average(reviews)
	if first != second {
		t.Fatalf("repeated calls disagreed: %v != %v", first, second)
	}
}

func TestAverageStaysInBounds(t *testing.T) {
	for _, ratings := range [][]int{{1}, {5}, {1, 5}, {1, 1, 5, 5, 5}} {
		got := Average(reviewsWithRatings(ratings...))
		if got < 0 || got > 5 {
			t.Fatalf("Average(%v) = %v out of [0,5]", ratings, got)
		}
	}
}
