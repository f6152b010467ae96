package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/services"
	"github.com/darkhuo10/vgameshop/internal/store/memory"
)

func newReviewFixture(t *testing.T) (*services.ReviewService, *services.EntitlementService, uint) {
	t.Helper()

	mem := memory.New()
	user := models.User{Name: "Test", Username: "reviewer", Email: "reviewer@example.com", Active: true}

	if err := mem.Users().Register(&user); err != nil {
		t.Fatalf("Register: %v", err)
	}

	entitlement := services.NewEntitlementService(mem.Libraries(), mem.Wishlists())
	return services.NewReviewService(mem.Reviews(), entitlement), entitlement, user.ID
}

func TestUpsertRejectsShortDescription(t *testing.T) {
	reviews, _, userID := newReviewFixture(t)

	_, _, err := reviews.Upsert(userID, 1, 4, "short")
	if !errors.Is(err, services.ErrDescriptionTooShort) {
		t.Fatalf("expected ErrDescriptionTooShort, got %v", err)
	}
}

func TestUpsertRejectsUnownedGame(t *testing.T) {
	reviews, _, userID := newReviewFixture(t)

	_, _, err := reviews.Upsert(userID, 1, 4, "a perfectly valid description")
	if !errors.Is(err, services.ErrNotOwned) {
		t.Fatalf("expected ErrNotOwned, got %v", err)
	}
}

func TestUpsertCreatesThenUpdatesInPlace(t *testing.T) {
	reviews, entitlement, userID := newReviewFixture(t)

	if _, err := entitlement.Grant(userID, 1); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	first, created, err := reviews.Upsert(userID, 1, 4, "really enjoyed the campaign")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !created {
		t.Fatal("expected the first upsert to create")
	}

	second, created, err := reviews.Upsert(userID, 1, 2, "patch 1.1 broke the save system")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if created {
		t.Fatal("expected the second upsert to update")
	}
	if second.ID != first.ID {
		t.Fatalf("expected review identity to be stable, got %d then %d", first.ID, second.ID)
	}
	if second.Rating != 2 {
		t.Fatalf("expected rating 2, got %v", second.Rating)
	}

	all, err := reviews.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one review, got %d", len(all))
	}
}

func TestUpsertClampsOutOfRangeRating(t *testing.T) {
	reviews, entitlement, userID := newReviewFixture(t)

	if _, err := entitlement.Grant(userID, 1); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	review, _, err := reviews.Upsert(userID, 1, 7, "way above the scale but accepted")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if review.Rating != 5 {
		t.Fatalf("expected rating clamped to 5, got %v", review.Rating)
	}

	review, _, err = reviews.Upsert(userID, 1, -3, "below the scale and clamped too")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if review.Rating != 0 {
		t.Fatalf("expected rating clamped to 0, got %v", review.Rating)
	}
}

func TestSortReviewsOwnFirstThenChronological(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	reviews := []models.Review{
		{UserID: 2, PublishDate: base.Add(2 * time.Hour)},
		{UserID: 3, PublishDate: base},
		{UserID: 1, PublishDate: base.Add(3 * time.Hour)},
		{UserID: 4, PublishDate: base.Add(time.Hour)},
	}

	services.SortReviews(reviews, 1)

	wantOrder := []uint{1, 3, 4, 2}
	for i, want := range wantOrder {
		if reviews[i].UserID != want {
			t.Fatalf("position %d: expected user %d, got %d", i, want, reviews[i].UserID)
		}
	}
}

func TestSortReviewsAnonymousIsChronological(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	reviews := []models.Review{
		{UserID: 2, PublishDate: base.Add(time.Hour)},
		{UserID: 3, PublishDate: base},
	}

	services.SortReviews(reviews, 0)

	if reviews[0].UserID != 3 || reviews[1].UserID != 2 {
		t.Fatalf("expected chronological order, got %d then %d", reviews[0].UserID, reviews[1].UserID)
	}
}
