// internal/config/database.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lib/pq"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// vcapServices is the subset of a Cloud Foundry VCAP_SERVICES document we read.
type vcapServices struct {
	UserProvided []struct {
		Credentials struct {
			URL string `json:"url"`
		} `json:"credentials"`
	} `json:"user-provided"`
}

// resolveDatabaseURI returns the URI bound through VCAP_SERVICES when the
// platform injects one, otherwise fallback.
func resolveDatabaseURI(fallback string) (string, error) {
	raw, ok := os.LookupEnv("VCAP_SERVICES")
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	var services vcapServices
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return "", fmt.Errorf("failed to parse VCAP_SERVICES: %w", err)
	}

	if len(services.UserProvided) == 0 || services.UserProvided[0].Credentials.URL == "" {
		return "", fmt.Errorf("VCAP_SERVICES has no user-provided credentials url")
	}

	return services.UserProvided[0].Credentials.URL, nil
}

// DSN returns the connection string handed to the GORM dialector. Postgres
// URLs are normalised to key/value form; anything else is passed through.
func (d *DatabaseConfig) DSN() (string, error) {
	if d.Driver != DriverPostgres {
		return d.URI, nil
	}

	if strings.HasPrefix(d.URI, "postgres://") || strings.HasPrefix(d.URI, "postgresql://") {
		dsn, err := pq.ParseURL(d.URI)
		if err != nil {
			return "", fmt.Errorf("invalid DATABASE_URI: %w", err)
		}
		return dsn, nil
	}

	return d.URI, nil
}
