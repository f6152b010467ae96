package types

import "time"

type UserResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Birthdate      time.Time `json:"birthdate"`
	Role           string    `json:"role"`
	Active         bool      `json:"active"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
}

// UserSummary is the short user shape embedded in review listings.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type GameResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Developer      string    `json:"developer"`
	Publisher      string    `json:"publisher"`
	Genres         []string  `json:"genres"`
	Languages      []string  `json:"languages"`
	Price          float64   `json:"price"`
	Description    string    `json:"description"`
	ReleaseDate    time.Time `json:"release_date"`
	SellNumber     int64     `json:"sell_number"`
	Visible        bool      `json:"visible"`
	Rating         float64   `json:"rating"` // derived from reviews on every read
	MainImage      string    `json:"main_image,omitempty"`
	ShowcaseImages []string  `json:"showcase_images,omitempty"`
}

// GameSummary is the short game shape embedded in review listings.
type GameSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ReviewResponse struct {
	ID          uint        `json:"id"`
	User        UserSummary `json:"user"`
	Game        GameSummary `json:"game"`
	Rating      float64     `json:"rating"`
	Description string      `json:"description"`
	PublishDate time.Time   `json:"publish_date"`
}

type CollectionResponse struct {
	UserID  uint   `json:"user_id"`
	GameIDs []uint `json:"game_ids"`
}

type TokenResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
