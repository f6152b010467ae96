package main

import (
	"log"

	"github.com/darkhuo10/vgameshop/db"
	"github.com/darkhuo10/vgameshop/internal/auth"
	"github.com/darkhuo10/vgameshop/internal/config"
	"github.com/darkhuo10/vgameshop/internal/handlers"
	"github.com/darkhuo10/vgameshop/internal/mq"
	"github.com/darkhuo10/vgameshop/internal/router"
	"github.com/darkhuo10/vgameshop/internal/services"
	"github.com/darkhuo10/vgameshop/internal/storage"
	"github.com/darkhuo10/vgameshop/internal/store"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.SeedDatabase {
		db.SeedDatabase()
	}

	assets, err := storage.NewS3Store(cfg)

	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	var events mq.Publisher = mq.NopPublisher{}

	if cfg.RabbitMQURL != "" {
		client, err := mq.NewClient(cfg)

		if err != nil {
			log.Printf("RabbitMQ unavailable, download events disabled: %v", err)
		} else {
			defer client.Close()
			events = client
		}
	}

	users := store.NewUserStore(db.DB)
	games := store.NewGameStore(db.DB)
	reviews := store.NewReviewStore(db.DB)
	libraries := store.NewLibraryStore(db.DB)
	wishlists := store.NewWishlistStore(db.DB)

	entitlement := services.NewEntitlementService(libraries, wishlists)
	reviewService := services.NewReviewService(reviews, entitlement)

	r := router.NewRouter(router.Handlers{
		Auth:      handlers.NewAuthHandler(users),
		Users:     handlers.NewUsersHandler(users, assets),
		Games:     handlers.NewGamesHandler(games, reviews, entitlement, assets, events),
		Reviews:   handlers.NewReviewsHandler(reviewService, users, games),
		Wishlists: handlers.NewWishlistsHandler(entitlement),
		Libraries: handlers.NewLibrariesHandler(entitlement),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
