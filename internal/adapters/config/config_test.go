package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmini/internal/adapters/config"
	"go.trai.ch/cmini/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, "cmini.toml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, filepath.Join(".", "corpora"), cfg.CorporaDir)
	assert.Equal(t, "mt-quotes", cfg.DefaultCorpus)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, '~', cfg.FreeChar)
	assert.Equal(t, 24*time.Hour, cfg.ResyncInterval)
	assert.False(t, cfg.TableExplicit)
	assert.False(t, cfg.IsPrivileged(1))
	assert.Equal(t, config.TelemetryProgrock, cfg.Telemetry)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cmini.toml", `
data_dir = "/srv/cmini"
default_corpus = "Shai"
workers = 3
privileged = [169285177481101312, 7]
free_char = "#"
find_cache_size = 32
resync_interval = "6h"
json_logs = true
table = "/etc/cmini/table.yaml"
telemetry = "OTel"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/cmini", cfg.DataDir)
	assert.Equal(t, filepath.Join("/srv/cmini", domain.CorporaDirName), cfg.CorporaDir)
	assert.Equal(t, "shai", cfg.DefaultCorpus)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.IsPrivileged(169285177481101312))
	assert.Equal(t, '#', cfg.FreeChar)
	assert.Equal(t, 32, cfg.FindCacheSize)
	assert.Equal(t, 6*time.Hour, cfg.ResyncInterval)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, "/etc/cmini/table.yaml", cfg.Table)
	assert.True(t, cfg.TableExplicit)
	assert.Equal(t, config.TelemetryOTel, cfg.Telemetry)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cmini.toml", `
data_dir = "from-file"
workers = 3
privileged = [1]
`)
	writeFile(t, dir, ".env", "CMINI_DATA_DIR=from-dotenv\nCMINI_WORKERS=5\nCMINI_PRIVILEGED=8, 9\n")
	t.Setenv(config.EnvWorkers, "6")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.DataDir)
	assert.Equal(t, 6, cfg.Workers, "process environment wins over .env")
	assert.Equal(t, []uint64{8, 9}, cfg.Privileged)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"bad toml", "data_dir = ", domain.ErrConfigParseFailed.Error()},
		{"bad duration", `resync_interval = "daily"`, domain.ErrConfigParseFailed.Error()},
		{"multi char free slot", `free_char = "ab"`, "free_char must be a single character"},
		{"unknown telemetry", `telemetry = "jaeger"`, "unknown telemetry backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := config.Load(writeFile(t, dir, "cmini.toml", tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}

	t.Run("bad privileged env", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(config.EnvPrivileged, "one,two")
		_, err := config.Load(filepath.Join(dir, "cmini.toml"))
		require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
	})
}

func TestPath(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	assert.Equal(t, "cmini.toml", config.Path())

	t.Setenv(config.EnvConfigPath, "/etc/cmini.toml")
	assert.Equal(t, "/etc/cmini.toml", config.Path())
}
