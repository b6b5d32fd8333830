package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "5000"
	defaultQueryTimeout = 10 * time.Second
)

// Config holds the application's configuration.
type Config struct {
	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string
	Port           string
	AnnounceIP     bool
	QueryTimeout   time.Duration
}

// requiredVars are the environment variables the server refuses to start without.
var requiredVars = []string{
	"INFLUXDB_URL",
	"INFLUXDB_TOKEN",
	"INFLUXDB_ORG",
	"INFLUXDB_BUCKET",
}

// LoadConfig loads the configuration from environment variables.
// A .env file in the working directory is read first if present.
func LoadConfig() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on system environment variables")
	}

	var missing []string
	for _, name := range requiredVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := Config{
		InfluxDBURL:    os.Getenv("INFLUXDB_URL"),
		InfluxDBToken:  os.Getenv("INFLUXDB_TOKEN"),
		InfluxDBOrg:    os.Getenv("INFLUXDB_ORG"),
		InfluxDBBucket: os.Getenv("INFLUXDB_BUCKET"),
		Port:           defaultPort,
		AnnounceIP:     true,
		QueryTimeout:   defaultQueryTimeout,
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}
	if announce := os.Getenv("SERVER_ANNOUNCE_IP"); announce == "false" {
		cfg.AnnounceIP = false
	}
	if timeout := os.Getenv("QUERY_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			log.Printf("Invalid QUERY_TIMEOUT %q, using default %s", timeout, defaultQueryTimeout)
		} else {
			cfg.QueryTimeout = d
		}
	}

	return cfg, nil
}
