package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"HouseTelemetry.api/internal/config"
	"HouseTelemetry.api/internal/controller"
	"HouseTelemetry.api/internal/repository"
	"HouseTelemetry.api/internal/routes"
	"HouseTelemetry.api/internal/service"
	"HouseTelemetry.api/internal/utils"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Initialize repository, service, and controller
	repo := repository.NewInfluxDBRepository(cfg.InfluxDBURL, cfg.InfluxDBToken, cfg.InfluxDBOrg, cfg.InfluxDBBucket)
	defer repo.Close()

	// Check the connection health. A failure here is logged but not fatal:
	// only missing configuration prevents startup.
	healthCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := repo.HealthCheck(healthCtx); err != nil {
		log.Printf("InfluxDB health check failed: %v", err)
	} else {
		log.Println("Successfully connected to InfluxDB!")
	}
	cancel()

	telemetryService := service.NewTelemetryService(repo)
	telemetryController := controller.NewTelemetryController(telemetryService, cfg.QueryTimeout)

	router := routes.SetupRouter(telemetryController)

	// CORS setup
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Content-Type"},
	})
	handler := c.Handler(router)

	// Discover the outbound-facing address and announce the endpoints.
	host := "127.0.0.1"
	serverAddress := fmt.Sprintf(":%s", cfg.Port)
	if cfg.AnnounceIP {
		host = utils.OutboundIP()
		serverAddress = fmt.Sprintf("%s:%s", host, cfg.Port)
	}
	baseURL := fmt.Sprintf("http://%s:%s", host, cfg.Port)
	fmt.Printf("Server is running at: %s\n", baseURL)
	fmt.Printf("House telemetry at:   %s/house\n", baseURL)

	err = http.ListenAndServe(serverAddress, handler)
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
