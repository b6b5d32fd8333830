package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"HouseTelemetry.api/internal/models"
	"HouseTelemetry.api/internal/service"
	"HouseTelemetry.api/internal/utils"
)

// TelemetryController handles HTTP requests for house sensor data.
type TelemetryController struct {
	service      *service.TelemetryService
	queryTimeout time.Duration
}

// NewTelemetryController creates a new TelemetryController.
func NewTelemetryController(service *service.TelemetryService, queryTimeout time.Duration) *TelemetryController {
	return &TelemetryController{
		service:      service,
		queryTimeout: queryTimeout,
	}
}

// HandleHouse serves the latest reading of the four house sensor fields.
// Any failure along the query path is logged with its cause and answered
// with a generic 500; the client never sees the underlying error.
func (c *TelemetryController) HandleHouse(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.queryTimeout)
	defer cancel()

	reading, err := c.service.LatestReading(ctx)
	if err != nil {
		log.Printf("Error querying InfluxDB: %v", err)
		apiErr := models.NewAPIError(models.ErrorCodeInternalServerError, "Internal Server Error while querying InfluxDB", nil, http.StatusInternalServerError)
		utils.RespondWithError(w, apiErr)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, reading)
}

// HandleIndex serves the landing page linking to the telemetry endpoint.
func (c *TelemetryController) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `<p>House telemetry is served at <a href="/house">/house</a></p>`)
}
