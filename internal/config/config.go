// Package config resolves CLI settings from .env files and DIALOGTREE_* environment variables.
// Command-line flags take precedence; they use the values loaded here as defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "DIALOGTREE_"

// Content sources.
const (
	SourceMemory = "memory"
	SourceFile   = "file"
	SourceLoam   = "loam"
	SourceSQLite = "sqlite"
)

// State backends.
const (
	StateNone   = "none"
	StateMemory = "memory"
	StateFile   = "file"
	StateRedis  = "redis"
)

// Config contains everything needed to assemble a dialog session.
type Config struct {
	Source      string
	ContentPath string
	StartNode   string

	StateBackend string
	SessionID    string
	Fresh        bool
	StateDir     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	JSON        bool
	Markdown    bool
	MetricsAddr string
	LogLevel    string
}

// Default returns the built-in configuration: sample content, no checkpoints.
func Default() Config {
	return Config{
		StateBackend: StateNone,
		StateDir:     filepath.Join(".dialogtree", "sessions"),
		RedisAddr:    "localhost:6379",
		Markdown:     true,
		LogLevel:     "info",
	}
}

// Load reads the given .env files (".env" when none are given; missing files are ignored)
// and overlays DIALOGTREE_* variables onto Default.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables already present in the environment.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Default()
	cfg.Source = getEnv("SOURCE", cfg.Source)
	cfg.ContentPath = getEnv("CONTENT", cfg.ContentPath)
	cfg.StartNode = getEnv("START", cfg.StartNode)
	cfg.StateBackend = getEnv("STATE", cfg.StateBackend)
	cfg.SessionID = getEnv("SESSION", cfg.SessionID)
	cfg.StateDir = getEnv("STATE_DIR", cfg.StateDir)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.MetricsAddr = getEnv("METRICS_ADDR", cfg.MetricsAddr)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", cfg.RedisDB); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = getEnvDuration("SESSION_TTL", cfg.SessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.JSON, err = getEnvBool("JSON", cfg.JSON); err != nil {
		return Config{}, err
	}
	if cfg.Markdown, err = getEnvBool("MARKDOWN", cfg.Markdown); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ResolveSource returns the explicit source, or infers one from ContentPath:
// a directory is a loam repository, .db/.sqlite is SQLite, anything else a content file.
// With no path the built-in sample content is used.
func (c Config) ResolveSource() (string, error) {
	if c.Source != "" {
		return c.Source, nil
	}
	if c.ContentPath == "" {
		return SourceMemory, nil
	}

	info, err := os.Stat(c.ContentPath)
	if err != nil {
		return "", fmt.Errorf("content path: %w", err)
	}
	if info.IsDir() {
		return SourceLoam, nil
	}
	switch strings.ToLower(filepath.Ext(c.ContentPath)) {
	case ".db", ".sqlite", ".sqlite3":
		return SourceSQLite, nil
	default:
		return SourceFile, nil
	}
}

// Validate reports inconsistent settings.
func (c Config) Validate() error {
	switch c.Source {
	case "", SourceMemory:
	case SourceFile, SourceLoam, SourceSQLite:
		if c.ContentPath == "" {
			return fmt.Errorf("source %q requires a content path", c.Source)
		}
	default:
		return fmt.Errorf("unknown content source %q", c.Source)
	}

	switch c.StateBackend {
	case "", StateNone, StateMemory, StateFile, StateRedis:
	default:
		return fmt.Errorf("unknown state backend %q", c.StateBackend)
	}

	if c.SessionTTL < 0 {
		return errors.New("session TTL cannot be negative")
	}
	return nil
}

// ResolveStart picks the start node: the configured one, then the one declared
// by the content, then domain.DefaultStartNodeID.
func (c Config) ResolveStart(declared string) string {
	if c.StartNode != "" {
		return c.StartNode
	}
	if declared != "" {
		return declared
	}
	return domain.DefaultStartNodeID
}

// Checkpointing reports whether a state backend is configured.
func (c Config) Checkpointing() bool {
	return c.StateBackend != "" && c.StateBackend != StateNone
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}
	return d, nil
}
