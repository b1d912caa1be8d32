package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	ListenAddr       string
	StoreDriver      string
	DatabaseURL      string
	LogLevel         string
	LogFormat        string
	MaxCPU           int
	ReadMaxRangeDays int
	ShutdownWait     time.Duration
}

// LoadDotEnv seeds the environment from .env style files. Missing files are
// skipped; variables already set are never overwritten.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func Parse() (*Config, error) {
	var errs []error
	c := &Config{}
	c.ListenAddr = getenv("LISTEN_ADDR", ":3000")
	c.StoreDriver = strings.ToLower(getenv("STORE_DRIVER", DriverPostgres))
	c.DatabaseURL = getenv("DATABASE_URL", "")
	c.LogLevel = getenv("LOG_LEVEL", "info")
	c.LogFormat = getenv("LOG_FORMAT", "json")
	c.MaxCPU = mustInt(getenv("MAX_CPU", "0"))
	c.ReadMaxRangeDays = mustInt(getenv("READ_MAX_RANGE_DAYS", "0"))
	c.ShutdownWait = mustDuration(getenv("SHUTDOWN_WAIT", "5s"))

	switch c.StoreDriver {
	case DriverPostgres, DriverSQLite:
		if c.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required for STORE_DRIVER=%s", c.StoreDriver))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}
	if c.ReadMaxRangeDays < 0 {
		errs = append(errs, fmt.Errorf("READ_MAX_RANGE_DAYS must be >= 0"))
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func mustInt(s string) int { n, _ := strconv.Atoi(s); return n }
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	if d <= 0 {
		return time.Second
	}
	return d
}
