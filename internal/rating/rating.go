// Package rating recomputes the derived average kept on every movie. It must
// run inside the same read-modify-write as the review mutation that triggered
// it so readers never see a review list and average that disagree.
package rating

import (
	"math"

	"github.com/Jason26214/MoviesApi/internal/models"
)

// Average returns the mean of all review ratings rounded half-away-from-zero
// to two decimal places, or 0 for an empty review list.
func Average(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*100) / 100
}
