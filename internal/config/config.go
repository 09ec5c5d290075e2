package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultHTTPAddr      = ":8080"
	defaultDataDir       = "."
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTTTL        = "24h"
	defaultStaffEmail    = "frontdesk@hotel.local"
	defaultStaffPassword = "frontdesk123"
)

// Config is the runtime configuration shared by every binary. When
// DatabaseURL is empty the flat-file store under DataDir is used.
type Config struct {
	HTTPAddr      string
	DataDir       string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	StaffEmail    string
	StaffPassword string
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", defaultHTTPAddr),
		DataDir:       getEnv("DATA_DIR", defaultDataDir),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:     getEnv("JWT_SECRET", defaultJWTSecret),
		StaffEmail:    getEnv("STAFF_EMAIL", defaultStaffEmail),
		StaffPassword: getEnv("STAFF_PASSWORD", defaultStaffPassword),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if cfg.JWTSecret == defaultJWTSecret {
		log.Printf("config_warning msg=%q", "JWT_SECRET is using the built-in default")
	}
	if cfg.StaffPassword == defaultStaffPassword {
		log.Printf("config_warning msg=%q", "STAFF_PASSWORD is using the built-in default")
	}

	return cfg, nil
}

// RoomsFile is the flat-file catalog path.
func (c *Config) RoomsFile() string { return filepath.Join(c.DataDir, "rooms.csv") }

// ReservationsFile is the flat-file reservation store path.
func (c *Config) ReservationsFile() string { return filepath.Join(c.DataDir, "bookings.csv") }

func getEnv(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	return d, nil
}
