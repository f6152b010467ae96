package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/darkhuo10/vgameshop/internal/handlers"
	"github.com/darkhuo10/vgameshop/internal/middleware"
	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/types"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Users     *handlers.UsersHandler
	Games     *handlers.GamesHandler
	Reviews   *handlers.ReviewsHandler
	Wishlists *handlers.WishlistsHandler
	Libraries *handlers.LibrariesHandler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	admin := middleware.RequireRoles(models.RoleAdmin)
	selfOrAdmin := middleware.RequireRolesOrSelf("user_id", models.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/games/:game_id", middleware.AuthMiddleware(), handlers.ReviewFeed)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.GET("/me", middleware.AuthMiddleware(), h.Auth.Me)
		}

		users := api.Group("/users", middleware.AuthMiddleware())
		{
			users.GET("", admin, h.Users.ListUsers)
			users.GET("/:user_id", selfOrAdmin, h.Users.GetUser)
			users.PUT("/:user_id", selfOrAdmin, h.Users.UpdateUser)
			users.DELETE("/:user_id", selfOrAdmin, h.Users.DeleteUser)
			users.PUT("/:user_id/picture", selfOrAdmin, h.Users.UploadPicture)
			users.GET("/:user_id/picture", h.Users.GetPicture)
		}

		games := api.Group("/games")
		{
			games.GET("", h.Games.ListGames)
			games.GET("/:game_id", h.Games.GetGame)
			games.GET("/:game_id/image", h.Games.GetImage)

			games.POST("", middleware.AuthMiddleware(), admin, h.Games.CreateGame)
			games.PUT("/:game_id", middleware.AuthMiddleware(), admin, h.Games.UpdateGame)
			games.DELETE("/:game_id", middleware.AuthMiddleware(), admin, h.Games.DeleteGame)
			games.PUT("/:game_id/image", middleware.AuthMiddleware(), admin, h.Games.UploadImage)
			games.PUT("/:game_id/file", middleware.AuthMiddleware(), admin, h.Games.UploadFile)

			games.PUT("/download/:game_id", middleware.AuthMiddleware(), h.Games.Download)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", middleware.OptionalAuthMiddleware(), h.Reviews.ListReviews)
			reviews.GET("/:review_id", h.Reviews.GetReview)
			reviews.GET("/user/:user_id", middleware.OptionalAuthMiddleware(), h.Reviews.ListByUser)
			reviews.GET("/game/:game_id", middleware.OptionalAuthMiddleware(), h.Reviews.ListByGame)

			reviews.PUT("", middleware.AuthMiddleware(), h.Reviews.UpsertReview)
			reviews.DELETE("/:review_id", middleware.AuthMiddleware(), h.Reviews.DeleteReview)
		}

		wishlists := api.Group("/wishlists", middleware.AuthMiddleware())
		{
			wishlists.GET("", admin, h.Wishlists.ListWishlists)
			wishlists.GET("/:user_id", selfOrAdmin, h.Wishlists.GetWishlist)
			wishlists.GET("/:user_id/exists", selfOrAdmin, h.Wishlists.Exists)
			wishlists.PUT("/:user_id/add", selfOrAdmin, h.Wishlists.AddGame)
			wishlists.PUT("/:user_id/remove", selfOrAdmin, h.Wishlists.RemoveGame)
		}

		libraries := api.Group("/libraries", middleware.AuthMiddleware())
		{
			libraries.GET("", admin, h.Libraries.ListLibraries)
			libraries.GET("/:user_id", selfOrAdmin, h.Libraries.GetLibrary)
			libraries.PUT("/:user_id/add", admin, h.Libraries.AddGame)
		}
	}

	return r
}
