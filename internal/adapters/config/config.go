// Package config loads the application configuration from cmini.toml and
// environment overrides.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// EnvConfigPath names the environment variable holding the config file path.
	EnvConfigPath = "CMINI_CONFIG"
	// EnvDataDir overrides data_dir.
	EnvDataDir = "CMINI_DATA_DIR"
	// EnvWorkers overrides workers.
	EnvWorkers = "CMINI_WORKERS"
	// EnvDefaultCorpus overrides default_corpus.
	EnvDefaultCorpus = "CMINI_DEFAULT_CORPUS"
	// EnvPrivileged overrides privileged with a comma separated id list.
	EnvPrivileged = "CMINI_PRIVILEGED"

	// TelemetryProgrock records resync progress on a progrock tape.
	TelemetryProgrock = "progrock"
	// TelemetryOTel records resync progress as OpenTelemetry spans.
	TelemetryOTel = "otel"
	// TelemetryNone disables progress recording.
	TelemetryNone = "none"

	defaultFindCacheSize  = 256
	defaultResyncInterval = 24 * time.Hour
	defaultFreeChar       = '~'
)

// Config is the resolved application configuration.
type Config struct {
	DataDir        string
	CorporaDir     string
	Table          string
	TableExplicit  bool
	DefaultCorpus  string
	Workers        int
	Privileged     []uint64
	FreeChar       rune
	FindCacheSize  int
	ResyncInterval time.Duration
	JSONLogs       bool
	Telemetry      string
}

// Default returns the configuration used when no file or override is present.
func Default() *Config {
	return &Config{
		DataDir:        ".",
		DefaultCorpus:  domain.DefaultCorpus,
		Workers:        runtime.NumCPU(),
		FreeChar:       defaultFreeChar,
		FindCacheSize:  defaultFindCacheSize,
		ResyncInterval: defaultResyncInterval,
		CorporaDir:     domain.DefaultCorporaPath("."),
		Table:          filepath.Join(".", domain.TableFileName),
		Telemetry:      TelemetryProgrock,
	}
}

// Path returns the config file path from CMINI_CONFIG, or cmini.toml in the
// working directory.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return domain.ConfigFileName
}

// Load reads the TOML file at path and applies overrides from a .env file
// beside it and from the process environment, in that order of precedence
// (process environment wins). A missing file is not an error.
func Load(path string) (*Config, error) {
	var file fileConfig
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
	} else if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	env, err := readEnv(filepath.Join(filepath.Dir(path), domain.EnvFileName))
	if err != nil {
		return nil, err
	}
	return resolve(&file, env)
}

// IsPrivileged reports whether id may use privileged operations.
func (c *Config) IsPrivileged(id uint64) bool {
	return slices.Contains(c.Privileged, id)
}

func readEnv(path string) (map[string]string, error) {
	env := make(map[string]string)
	dotenv, err := godotenv.Read(path)
	switch {
	case err == nil:
		env = dotenv
	case !errors.Is(err, fs.ErrNotExist):
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	for _, key := range []string{EnvDataDir, EnvWorkers, EnvDefaultCorpus, EnvPrivileged} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

func resolve(file *fileConfig, env map[string]string) (*Config, error) {
	cfg := Default()

	if file.DataDir != nil {
		cfg.DataDir = *file.DataDir
	}
	if v, ok := env[EnvDataDir]; ok && v != "" {
		cfg.DataDir = v
	}

	cfg.CorporaDir = domain.DefaultCorporaPath(cfg.DataDir)
	if file.CorporaDir != nil {
		cfg.CorporaDir = *file.CorporaDir
	}
	cfg.Table = filepath.Join(cfg.DataDir, domain.TableFileName)
	if file.Table != nil {
		cfg.Table = *file.Table
		cfg.TableExplicit = true
	}

	if file.DefaultCorpus != nil {
		cfg.DefaultCorpus = *file.DefaultCorpus
	}
	if v, ok := env[EnvDefaultCorpus]; ok && v != "" {
		cfg.DefaultCorpus = v
	}
	cfg.DefaultCorpus = strings.ToLower(cfg.DefaultCorpus)

	workers := 0
	if file.Workers != nil {
		workers = *file.Workers
	}
	if v, ok := env[EnvWorkers]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), EnvWorkers, v)
		}
		workers = n
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	cfg.Privileged = file.Privileged
	if v, ok := env[EnvPrivileged]; ok {
		ids, err := parseIDs(v)
		if err != nil {
			return nil, err
		}
		cfg.Privileged = ids
	}

	if file.FreeChar != nil {
		r, size := utf8.DecodeRuneInString(*file.FreeChar)
		if r == utf8.RuneError || size != len(*file.FreeChar) {
			return nil, zerr.With(zerr.New("free_char must be a single character"), "free_char", *file.FreeChar)
		}
		cfg.FreeChar = r
	}
	if file.FindCacheSize != nil && *file.FindCacheSize > 0 {
		cfg.FindCacheSize = *file.FindCacheSize
	}
	if file.ResyncInterval != nil {
		d, err := time.ParseDuration(*file.ResyncInterval)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "resync_interval", *file.ResyncInterval)
		}
		cfg.ResyncInterval = d
	}
	if file.JSONLogs != nil {
		cfg.JSONLogs = *file.JSONLogs
	}
	if file.Telemetry != nil {
		switch backend := strings.ToLower(*file.Telemetry); backend {
		case TelemetryProgrock, TelemetryOTel, TelemetryNone:
			cfg.Telemetry = backend
		default:
			return nil, zerr.With(zerr.New("unknown telemetry backend"), "telemetry", *file.Telemetry)
		}
	}
	return cfg, nil
}

func parseIDs(s string) ([]uint64, error) {
	var ids []uint64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), EnvPrivileged, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
