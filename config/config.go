package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultImageDPI      = 200
	defaultJobTimeoutSec = 300
	maxDefaultWorkers    = 8
)

type Config struct {
	InputDir     string
	OutputDir    string
	Flatten      bool
	ImageDPI     int
	Workers      int
	JobTimeout   time.Duration
	ManifestPath string // empty disables the run manifest
}

// Load builds the configuration from environment variables (a local
// .env file is honored when present). CLI flags override these values
// afterwards. Validation failures are fatal pre-flight errors.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dpi, err := strconv.Atoi(getEnv("PDFBATCH_IMAGE_DPI", strconv.Itoa(defaultImageDPI)))
	if err != nil {
		return nil, fmt.Errorf("invalid PDFBATCH_IMAGE_DPI: %w", err)
	}

	workers, err := strconv.Atoi(getEnv("PDFBATCH_WORKERS", strconv.Itoa(defaultWorkers())))
	if err != nil {
		return nil, fmt.Errorf("invalid PDFBATCH_WORKERS: %w", err)
	}

	timeoutSec, err := strconv.Atoi(getEnv("PDFBATCH_JOB_TIMEOUT", strconv.Itoa(defaultJobTimeoutSec)))
	if err != nil {
		return nil, fmt.Errorf("invalid PDFBATCH_JOB_TIMEOUT: %w", err)
	}

	cfg := &Config{
		InputDir:     getEnv("PDFBATCH_INPUT", "input"),
		OutputDir:    getEnv("PDFBATCH_OUTPUT", "output"),
		ImageDPI:     dpi,
		Workers:      workers,
		JobTimeout:   time.Duration(timeoutSec) * time.Second,
		ManifestPath: os.Getenv("PDFBATCH_MANIFEST"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate is re-run after flag overrides are applied.
func (c *Config) Validate() error {
	if c.ImageDPI <= 0 {
		return fmt.Errorf("image dpi must be positive, got %d", c.ImageDPI)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.JobTimeout <= 0 {
		return fmt.Errorf("job timeout must be positive, got %s", c.JobTimeout)
	}
	return nil
}

// defaultWorkers sizes the image/pdf pool at twice the core count,
// capped: the work is dominated by external renderer processes, not Go
// CPU time.
func defaultWorkers() int {
	n := runtime.NumCPU() * 2
	if n > maxDefaultWorkers {
		n = maxDefaultWorkers
	}
	return n
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
