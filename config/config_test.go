package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PDFBATCH_INPUT", "PDFBATCH_OUTPUT", "PDFBATCH_IMAGE_DPI",
		"PDFBATCH_WORKERS", "PDFBATCH_JOB_TIMEOUT", "PDFBATCH_MANIFEST",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "input", cfg.InputDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.False(t, cfg.Flatten)
	assert.Equal(t, 200, cfg.ImageDPI)
	assert.Equal(t, 5*time.Minute, cfg.JobTimeout)
	assert.Greater(t, cfg.Workers, 0)
	assert.LessOrEqual(t, cfg.Workers, maxDefaultWorkers)
	assert.Empty(t, cfg.ManifestPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PDFBATCH_INPUT", "/data/in")
	t.Setenv("PDFBATCH_OUTPUT", "/data/out")
	t.Setenv("PDFBATCH_IMAGE_DPI", "300")
	t.Setenv("PDFBATCH_WORKERS", "2")
	t.Setenv("PDFBATCH_JOB_TIMEOUT", "60")
	t.Setenv("PDFBATCH_MANIFEST", "/data/manifest.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/in", cfg.InputDir)
	assert.Equal(t, "/data/out", cfg.OutputDir)
	assert.Equal(t, 300, cfg.ImageDPI)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, time.Minute, cfg.JobTimeout)
	assert.Equal(t, "/data/manifest.db", cfg.ManifestPath)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("PDFBATCH_IMAGE_DPI", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{InputDir: "in", OutputDir: "out", ImageDPI: 200, Workers: 4, JobTimeout: time.Minute}

	assert.NoError(t, base.Validate())

	bad := base
	bad.ImageDPI = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.Workers = -1
	assert.Error(t, bad.Validate())

	bad = base
	bad.JobTimeout = 0
	assert.Error(t, bad.Validate())
}
