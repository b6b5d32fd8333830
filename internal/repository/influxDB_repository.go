package repository

import (
	"context"
	"fmt"
	"strings"

	"HouseTelemetry.api/internal/models"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
)

// Fixed query parameters for the house telemetry measurement.
const (
	measurement  = "ESP32"
	nameTag      = "Telemetry"
	queryRange   = "-60m"
	windowPeriod = "10s"
)

// Repository abstracts the time-series store for the service layer.
type Repository interface {
	QueryLatest(ctx context.Context) ([]models.Record, error)
}

// InfluxDBRepository executes Flux queries against InfluxDB.
// The underlying client is safe for concurrent use, so one repository
// is shared by all in-flight requests.
type InfluxDBRepository struct {
	client influxdb2.Client
	org    string
	bucket string
}

// NewInfluxDBRepository creates a new InfluxDBRepository.
func NewInfluxDBRepository(url, token, org, bucket string) *InfluxDBRepository {
	client := influxdb2.NewClient(url, token)
	return &InfluxDBRepository{
		client: client,
		org:    org,
		bucket: bucket,
	}
}

// HealthCheck reports whether the InfluxDB instance is reachable and healthy.
func (r *InfluxDBRepository) HealthCheck(ctx context.Context) error {
	health, err := r.client.Health(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to InfluxDB: %w", err)
	}
	if health.Status != "pass" {
		return fmt.Errorf("InfluxDB health check failed: %v", health.Message)
	}
	return nil
}

// Close releases the underlying client resources.
func (r *InfluxDBRepository) Close() {
	r.client.Close()
}

// BuildFluxQuery returns the Flux query selecting the last hour of house
// telemetry: the four recognized fields of the ESP32 measurement, downsampled
// to 10s windows keeping the last value, reduced to the single latest point
// per field. The 60m range is evaluated by InfluxDB at execution time.
func BuildFluxQuery(bucket string) string {
	fieldFilters := make([]string, len(models.SensorFields))
	for i, field := range models.SensorFields {
		fieldFilters[i] = fmt.Sprintf(`r["_field"] == "%s"`, field)
	}
	fieldFilterClause := strings.Join(fieldFilters, " or ")

	return fmt.Sprintf(`
		from(bucket: "%s")
		|> range(start: %s)
		|> filter(fn: (r) => r["_measurement"] == "%s")
		|> filter(fn: (r) => r["Name"] == "%s")
		|> filter(fn: (r) => %s)
		|> aggregateWindow(every: %s, fn: last, createEmpty: false)
		|> last()
	`, bucket, queryRange, measurement, nameTag, fieldFilterClause, windowPeriod)
}

// QueryLatest runs the fixed telemetry query and flattens the result tables
// into a slice of field/value records, preserving iteration order.
func (r *InfluxDBRepository) QueryLatest(ctx context.Context) ([]models.Record, error) {
	queryAPI := r.client.QueryAPI(r.org)

	fluxQuery := BuildFluxQuery(r.bucket)
	result, err := queryAPI.Query(ctx, fluxQuery)
	if err != nil {
		return nil, fmt.Errorf("error querying InfluxDB: %w", err)
	}

	var records []models.Record
	for result.Next() {
		record := result.Record()
		records = append(records, models.Record{
			Field: record.Field(),
			Value: record.Value(),
		})
	}
	if result.Err() != nil {
		return nil, fmt.Errorf("error iterating query result: %w", result.Err())
	}

	return records, nil
}
