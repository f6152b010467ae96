package memory_test

import (
	"errors"
	"testing"

	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/store"
	"github.com/darkhuo10/vgameshop/internal/store/memory"
)

func TestRegisterCreatesCollections(t *testing.T) {
	mem := memory.New()

	user := models.User{Username: "alice", Email: "alice@example.com", Active: true}
	if err := mem.Users().Register(&user); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected an ID to be assigned")
	}

	library, err := mem.Libraries().LibraryByUserID(user.ID)
	if err != nil {
		t.Fatalf("LibraryByUserID: %v", err)
	}
	if len(library.GameIDs) != 0 {
		t.Fatalf("expected an empty library, got %v", library.GameIDs)
	}

	wishlist, err := mem.Wishlists().WishlistByUserID(user.ID)
	if err != nil {
		t.Fatalf("WishlistByUserID: %v", err)
	}
	if len(wishlist.GameIDs) != 0 {
		t.Fatalf("expected an empty wishlist, got %v", wishlist.GameIDs)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	mem := memory.New()

	first := models.User{Username: "alice", Email: "alice@example.com"}
	if err := mem.Users().Register(&first); err != nil {
		t.Fatalf("Register: %v", err)
	}

	sameUsername := models.User{Username: "alice", Email: "other@example.com"}
	if err := mem.Users().Register(&sameUsername); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate username, got %v", err)
	}

	sameEmail := models.User{Username: "bob", Email: "alice@example.com"}
	if err := mem.Users().Register(&sameEmail); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate email, got %v", err)
	}
}

func TestListUsersActiveFilter(t *testing.T) {
	mem := memory.New()

	active := models.User{Username: "alice", Email: "alice@example.com", Active: true}
	inactive := models.User{Username: "bob", Email: "bob@example.com", Active: false}

	for _, u := range []*models.User{&active, &inactive} {
		if err := mem.Users().Register(u); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	all, err := mem.Users().ListUsers(nil)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}

	wantActive := true
	onlyActive, err := mem.Users().ListUsers(&wantActive)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(onlyActive) != 1 || onlyActive[0].Username != "alice" {
		t.Fatalf("expected only alice, got %v", onlyActive)
	}
}

func TestDeleteReviewNotFound(t *testing.T) {
	mem := memory.New()

	if err := mem.Reviews().DeleteReview(1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	review := models.Review{UserID: 1, GameID: 1, Rating: 3, Description: "fine enough"}
	if err := mem.Reviews().SaveReview(&review); err != nil {
		t.Fatalf("SaveReview: %v", err)
	}
	if err := mem.Reviews().DeleteReview(review.ID); err != nil {
		t.Fatalf("DeleteReview: %v", err)
	}
	if _, err := mem.Reviews().ReviewByID(review.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected the review to be gone, got %v", err)
	}
}
