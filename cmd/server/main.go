package main

import (
	"log"
	"net/http"

	"trip_viewer/internal/config"
	"trip_viewer/internal/logger"
	"trip_viewer/internal/middleware"
	"trip_viewer/internal/routes"
	"trip_viewer/internal/store"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.Load()

	// Connect to the database
	st, err := store.NewPostgres(cfg.DSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Setup Gin router
	r := routes.SetupRouter(st)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :" + cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
