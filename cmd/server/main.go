package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recomptracker/internal/api"
	"recomptracker/internal/config"
	"recomptracker/internal/repository/sqlite"
	"recomptracker/internal/service"
	"recomptracker/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Recomp Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database ---
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("FATAL: Could not open database: %v", err)
	}
	defer func() {
		log.Println("Closing database...")
		if err := db.Close(); err != nil {
			log.Printf("ERROR: Failed to close database: %v", err)
		}
	}()

	// Schema failure means no subsequent operation can succeed.
	if err := sqlite.EnsureSchema(db); err != nil {
		log.Fatalf("FATAL: Could not initialize schema: %v", err)
	}
	log.Println("Database ready.")

	// --- Photo Blob Store (optional) ---
	var blobStore storage.BlobStore
	if cfg.Photos.Driver == config.PhotoDriverS3 {
		log.Println("Initializing S3 photo storage...")
		blobStore, err = storage.NewS3BlobStore(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Println("Photo payloads stored inline in the database.")
	}

	// --- Initialize Repositories ---
	userRepo := sqlite.NewUserRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)
	nutritionRepo := sqlite.NewNutritionRepository(db)
	measurementRepo := sqlite.NewMeasurementRepository(db)
	photoRepo := sqlite.NewPhotoRepository(db)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	trackerService := service.NewTrackerService(workoutRepo, nutritionRepo, measurementRepo, photoRepo, blobStore)
	progressService := service.NewProgressService(workoutRepo, nutritionRepo, measurementRepo, photoRepo, blobStore)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, trackerService, progressService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
