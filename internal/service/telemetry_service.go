package service

import (
	"context"
	"fmt"
	"strconv"

	"HouseTelemetry.api/internal/models"
	"HouseTelemetry.api/internal/repository"
)

// TelemetryService folds raw query records into the house sensor reading.
type TelemetryService struct {
	repo repository.Repository
}

// NewTelemetryService creates a new TelemetryService.
func NewTelemetryService(repo repository.Repository) *TelemetryService {
	return &TelemetryService{
		repo: repo,
	}
}

// LatestReading queries the store and folds the result into a SensorReading.
// Unseen fields stay null; if a field appears in multiple records the last
// one in iteration order wins. Records with unrecognized field names are
// ignored.
func (s *TelemetryService) LatestReading(ctx context.Context) (models.SensorReading, error) {
	var reading models.SensorReading

	records, err := s.repo.QueryLatest(ctx)
	if err != nil {
		return reading, fmt.Errorf("error querying data: %w", err)
	}

	for _, record := range records {
		reading.Set(record.Field, formatValue(record.Value))
	}

	return reading, nil
}

// formatValue renders a store-native value as its string representation.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
