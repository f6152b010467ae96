package handlers

import (
	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/types"
)

func toUserResponse(user *models.User) types.UserResponse {
	return types.UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Surname:        user.Surname,
		Username:       user.Username,
		Email:          user.Email,
		Birthdate:      user.Birthdate,
		Role:           user.Role,
		Active:         user.Active,
		ProfilePicture: user.ProfilePicture,
	}
}

func toGameResponse(game *models.Game, rating float64) types.GameResponse {
	return types.GameResponse{
		ID:             game.ID,
		Name:           game.Name,
		Developer:      game.Developer,
		Publisher:      game.Publisher,
		Genres:         game.Genres,
		Languages:      game.Languages,
		Price:          game.Price,
		Description:    game.Description,
		ReleaseDate:    game.ReleaseDate,
		SellNumber:     game.SellNumber,
		Visible:        game.Visible,
		Rating:         rating,
		MainImage:      game.MainImage,
		ShowcaseImages: game.ShowcaseImages,
	}
}

func toCollectionResponse(userID uint, gameIDs []uint) types.CollectionResponse {
	if gameIDs == nil {
		gameIDs = []uint{}
	}

	return types.CollectionResponse{
		UserID:  userID,
		GameIDs: gameIDs,
	}
}
