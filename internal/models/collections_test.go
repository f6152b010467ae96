package models

import "testing"

func TestLibraryAddIsIdempotent(t *testing.T) {
	var library Library

	library.Add(3)
	library.Add(3)
	library.Add(5)

	if len(library.GameIDs) != 2 {
		t.Fatalf("expected 2 games, got %d", len(library.GameIDs))
	}
	if !library.Contains(3) || !library.Contains(5) {
		t.Fatalf("expected games 3 and 5, got %v", library.GameIDs)
	}
}

func TestWishlistAddAndRemove(t *testing.T) {
	var wishlist Wishlist

	wishlist.Add(1)
	wishlist.Add(2)
	wishlist.Add(1)

	if len(wishlist.GameIDs) != 2 {
		t.Fatalf("expected 2 games, got %d", len(wishlist.GameIDs))
	}

	wishlist.Remove(1)

	if wishlist.Contains(1) {
		t.Fatal("expected game 1 to be removed")
	}
	if !wishlist.Contains(2) {
		t.Fatal("expected game 2 to remain")
	}

	// Removing an absent game must be a no-op
	wishlist.Remove(99)

	if len(wishlist.GameIDs) != 1 {
		t.Fatalf("expected 1 game, got %d", len(wishlist.GameIDs))
	}
}

func TestGameGenreAndLanguageLookup(t *testing.T) {
	game := Game{
		Genres:    []string{"RPG", "Action"},
		Languages: []string{"English"},
	}

	if !game.HasGenre("RPG") {
		t.Error("expected game to have genre RPG")
	}
	if game.HasGenre("Horror") {
		t.Error("did not expect genre Horror")
	}
	if !game.HasLanguage("English") {
		t.Error("expected game to have language English")
	}
	if game.HasLanguage("French") {
		t.Error("did not expect language French")
	}
}

func TestUserIsAdmin(t *testing.T) {
	admin := User{Role: RoleAdmin}
	user := User{Role: RoleUser}

	if !admin.IsAdmin() {
		t.Error("expected ADMIN role to be admin")
	}
	if user.IsAdmin() {
		t.Error("did not expect USER role to be admin")
	}
}
