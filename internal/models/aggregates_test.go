package models

import (
	"testing"
)

func TestRatingSummary(t *testing.T) {
	tests := []struct {
		name       string
		ratings    []int
		wantRating float64
		wantTotal  int
	}{
		{"no reviews", nil, 0.0, 0},
		{"single review", []int{5}, 5.0, 1},
		{"five and three averages to four", []int{5, 3}, 4.0, 2},
		{"rounds to one decimal", []int{5, 4, 4}, 4.3, 3},
		{"rounds half up", []int{4, 3}, 3.5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]*Review, 0, len(tt.ratings))
			for _, r := range tt.ratings {
				reviews = append(reviews, &Review{Rating: r})
			}

			rating, total := RatingSummary(reviews)
			if rating != tt.wantRating {
				t.Errorf("rating = %v, want %v", rating, tt.wantRating)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
		})
	}
}

func TestApproxDistanceKm(t *testing.T) {
	// A venue at the query's exact coordinates is at distance zero.
	if d := ApproxDistanceKm(-37.8136, 144.9631, -37.8136, 144.9631); d != 0 {
		t.Errorf("distance at same point = %v, want 0", d)
	}

	// One degree of latitude maps to the fixed 111 km approximation.
	if d := ApproxDistanceKm(1, 0, 0, 0); d != 111 {
		t.Errorf("one degree latitude = %v, want 111", d)
	}

	// Symmetric in its arguments.
	a := ApproxDistanceKm(-37.8136, 144.9631, -37.8230, 144.9750)
	b := ApproxDistanceKm(-37.8230, 144.9750, -37.8136, 144.9631)
	if a != b {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(3.14159); got != 3.14 {
		t.Errorf("Round2(3.14159) = %v, want 3.14", got)
	}
	if got := Round2(2.718); got != 2.72 {
		t.Errorf("Round2(2.718) = %v, want 2.72", got)
	}
}
