package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"HouseTelemetry.api/internal/controller"
	"HouseTelemetry.api/internal/models"
	"HouseTelemetry.api/internal/service"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	records []models.Record
	err     error
}

func (s *stubRepository) QueryLatest(_ context.Context) ([]models.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func newTestServer(t *testing.T, repo *stubRepository) (*httptest.Server, *resty.Client) {
	t.Helper()
	ctrl := controller.NewTelemetryController(service.NewTelemetryService(repo), time.Second)
	srv := httptest.NewServer(SetupRouter(ctrl))
	t.Cleanup(srv.Close)
	return srv, resty.New().SetBaseURL(srv.URL)
}

func TestGetHouseReturnsReading(t *testing.T) {
	_, client := newTestServer(t, &stubRepository{records: []models.Record{
		{Field: "Temperature", Value: 20.1},
		{Field: "Sensor", Value: "OK"},
	}})

	resp, err := client.R().Get("/house")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"Temperature":"20.1","Humidity":null,"Pressure":null,"Sensor":"OK"}`, string(resp.Body()))
}

func TestGetHouseStoreFailureReturns500(t *testing.T) {
	_, client := newTestServer(t, &stubRepository{err: errors.New("dial tcp: connection refused")})

	resp, err := client.R().Get("/house")
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Internal Server Error while querying InfluxDB")
	assert.NotContains(t, string(resp.Body()), "connection refused")
}

func TestGetIndexServesLandingPage(t *testing.T) {
	_, client := newTestServer(t, &stubRepository{})

	resp, err := client.R().Get("/")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, string(resp.Body()), `/house`)
}

func TestGetHealth(t *testing.T) {
	_, client := newTestServer(t, &stubRepository{})

	resp, err := client.R().Get("/health")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "OK", string(resp.Body()))
}

func TestPostHouseNotAllowed(t *testing.T) {
	_, client := newTestServer(t, &stubRepository{})

	resp, err := client.R().Post("/house")
	require.NoError(t, err)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode())
}
