package services_test

import (
	"testing"

	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/services"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []float64
		want    float64
	}{
		{"no reviews", nil, 0},
		{"single review", []float64{4}, 4},
		{"exact mean", []float64{2, 4}, 3},
		{"rounded to two decimals", []float64{5, 4, 4}, 4.33},
		{"rounds up", []float64{1, 2, 2}, 1.67},
		{"all zero", []float64{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]models.Review, 0, len(tt.ratings))
			for _, r := range tt.ratings {
				reviews = append(reviews, models.Review{Rating: r})
			}

			if got := services.AverageRating(reviews); got != tt.want {
				t.Fatalf("AverageRating(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}

func TestClampRating(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{2.5, 2.5},
		{5, 5},
		{7, 5},
		{100, 5},
	}

	for _, tt := range tests {
		if got := services.ClampRating(tt.in); got != tt.want {
			t.Errorf("ClampRating(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
