package services_test

import (
	"errors"
	"testing"

	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/services"
	"github.com/darkhuo10/vgameshop/internal/store"
	"github.com/darkhuo10/vgameshop/internal/store/memory"
)

func newEntitlementFixture(t *testing.T) (*services.EntitlementService, uint) {
	t.Helper()

	mem := memory.New()
	user := models.User{Name: "Test", Username: "tester", Email: "tester@example.com", Active: true}

	if err := mem.Users().Register(&user); err != nil {
		t.Fatalf("Register: %v", err)
	}

	return services.NewEntitlementService(mem.Libraries(), mem.Wishlists()), user.ID
}

func TestGrantIsIdempotent(t *testing.T) {
	entitlement, userID := newEntitlementFixture(t)

	for i := 0; i < 3; i++ {
		library, err := entitlement.Grant(userID, 10)
		if err != nil {
			t.Fatalf("Grant: %v", err)
		}
		if len(library.GameIDs) != 1 {
			t.Fatalf("expected 1 game after grant %d, got %d", i+1, len(library.GameIDs))
		}
	}

	owns, err := entitlement.Owns(userID, 10)
	if err != nil {
		t.Fatalf("Owns: %v", err)
	}
	if !owns {
		t.Fatal("expected user to own game 10")
	}
}

func TestGrantRemovesWish(t *testing.T) {
	entitlement, userID := newEntitlementFixture(t)

	if _, err := entitlement.Wish(userID, 10); err != nil {
		t.Fatalf("Wish: %v", err)
	}

	if _, err := entitlement.Grant(userID, 10); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	wishlist, err := entitlement.WishlistOf(userID)
	if err != nil {
		t.Fatalf("WishlistOf: %v", err)
	}
	if wishlist.Contains(10) {
		t.Fatal("expected wish to be dropped when the game was granted")
	}
}

func TestWishAndUnwishAreIdempotent(t *testing.T) {
	entitlement, userID := newEntitlementFixture(t)

	for i := 0; i < 2; i++ {
		wishlist, err := entitlement.Wish(userID, 7)
		if err != nil {
			t.Fatalf("Wish: %v", err)
		}
		if len(wishlist.GameIDs) != 1 {
			t.Fatalf("expected 1 wished game, got %d", len(wishlist.GameIDs))
		}
	}

	for i := 0; i < 2; i++ {
		wishlist, err := entitlement.Unwish(userID, 7)
		if err != nil {
			t.Fatalf("Unwish: %v", err)
		}
		if len(wishlist.GameIDs) != 0 {
			t.Fatalf("expected empty wishlist, got %d games", len(wishlist.GameIDs))
		}
	}
}

func TestWishingAnOwnedGameIsAllowed(t *testing.T) {
	entitlement, userID := newEntitlementFixture(t)

	if _, err := entitlement.Grant(userID, 3); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	wishlist, err := entitlement.Wish(userID, 3)
	if err != nil {
		t.Fatalf("Wish: %v", err)
	}
	if !wishlist.Contains(3) {
		t.Fatal("expected an owned game to still be wishable")
	}
}

func TestUnknownUserSurfacesNotFound(t *testing.T) {
	entitlement, _ := newEntitlementFixture(t)

	if _, err := entitlement.Grant(999, 1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := entitlement.Owns(999, 1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
