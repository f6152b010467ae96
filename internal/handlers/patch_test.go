package handlers

import (
	"testing"
	"time"

	"github.com/darkhuo10/vgameshop/internal/models"
)

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }
func slicePtr(s []string) *[]string  { return &s }

func TestApplyUserPatch(t *testing.T) {
	original := models.User{
		Name:         "Alice",
		Surname:      "Smith",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	}

	patched := applyUserPatch(original, UpdateUserRequest{
		Name:  strPtr("  Alicia "),
		Email: strPtr(" ALICIA@Example.com "),
	})

	if patched.Name != "Alicia" {
		t.Errorf("expected trimmed name Alicia, got %q", patched.Name)
	}
	if patched.Email != "alicia@example.com" {
		t.Errorf("expected normalized email, got %q", patched.Email)
	}
	if patched.Surname != "Smith" {
		t.Errorf("expected surname to be kept, got %q", patched.Surname)
	}
	if patched.PasswordHash != "hash" {
		t.Error("expected password hash to be untouched")
	}

	// The input value must not be mutated
	if original.Name != "Alice" || original.Email != "alice@example.com" {
		t.Error("expected the original user to be unchanged")
	}
}

func TestApplyGamePatch(t *testing.T) {
	release := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	original := models.Game{
		Name:      "Old Name",
		Developer: "Dev",
		Publisher: "Pub",
		Genres:    []string{"RPG"},
		Price:     19.99,
	}

	patched := applyGamePatch(original, UpdateGameRequest{
		Name:        strPtr("New Name"),
		Price:       floatPtr(9.99),
		Genres:      slicePtr([]string{"RPG", "Action"}),
		ReleaseDate: timePtr(release),
	})

	if patched.Name != "New Name" {
		t.Errorf("expected patched name, got %q", patched.Name)
	}
	if patched.Price != 9.99 {
		t.Errorf("expected patched price, got %v", patched.Price)
	}
	if len(patched.Genres) != 2 {
		t.Errorf("expected 2 genres, got %v", patched.Genres)
	}
	if !patched.ReleaseDate.Equal(release) {
		t.Errorf("expected patched release date, got %v", patched.ReleaseDate)
	}
	if patched.Developer != "Dev" || patched.Publisher != "Pub" {
		t.Error("expected unpatched fields to be kept")
	}

	if original.Name != "Old Name" || len(original.Genres) != 1 {
		t.Error("expected the original game to be unchanged")
	}
}

func TestGameFilterMatches(t *testing.T) {
	game := models.Game{
		Name:      "Starfall Tactics",
		Developer: "Nova Forge",
		Publisher: "Nova Forge",
		Genres:    []string{"Strategy"},
		Languages: []string{"English"},
	}

	tests := []struct {
		name   string
		filter gameFilter
		rating float64
		want   bool
	}{
		{"empty filter", gameFilter{}, 0, true},
		{"genre match", gameFilter{Genre: "Strategy"}, 0, true},
		{"genre miss", gameFilter{Genre: "Horror"}, 0, false},
		{"name substring case-insensitive", gameFilter{Name: "starfall"}, 0, true},
		{"publisher miss", gameFilter{Publisher: "Someone Else"}, 0, false},
		{"rating above threshold", gameFilter{MinRating: 4, HasRating: true}, 4.5, true},
		{"rating below threshold", gameFilter{MinRating: 4, HasRating: true}, 3.5, false},
		{"unrated excluded by threshold", gameFilter{MinRating: 1, HasRating: true}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.matches(&game, tt.rating); got != tt.want {
				t.Fatalf("matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
