package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/silkway-travel/tour-booking-api/internal/auth"
	"github.com/silkway-travel/tour-booking-api/internal/config"
	"github.com/silkway-travel/tour-booking-api/internal/database"
	"github.com/silkway-travel/tour-booking-api/internal/handlers"
	"github.com/silkway-travel/tour-booking-api/internal/notifier"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)
	database.SeedAdmin(db, cfg)

	// Initialize Notifier
	var n notifier.Notifier
	telegramNotifier, err := notifier.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("Telegram notifier not initialized: %v", err)
	} else {
		n = telegramNotifier
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, db)
	intakeHandler := handlers.NewIntakeHandler(db, n, time.Duration(cfg.NotifyTimeoutSeconds)*time.Second)
	tourHandler := handlers.NewTourHandler(db)
	contentHandler := handlers.NewContentHandler(db)
	adminHandler := handlers.NewAdminHandler(db)
	apiKeyHandler := handlers.NewAPIKeyHandler(db)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, intakeHandler, tourHandler, contentHandler, adminHandler, apiKeyHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
