package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.StartNode)
	assert.False(t, cfg.Checkpointing())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DIALOGTREE_START", "intro")
	t.Setenv("DIALOGTREE_STATE", "redis")
	t.Setenv("DIALOGTREE_REDIS_DB", "3")
	t.Setenv("DIALOGTREE_SESSION_TTL", "90s")
	t.Setenv("DIALOGTREE_JSON", "true")
	t.Setenv("DIALOGTREE_MARKDOWN", "0")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "intro", cfg.StartNode)
	assert.Equal(t, StateRedis, cfg.StateBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 90*time.Second, cfg.SessionTTL)
	assert.True(t, cfg.JSON)
	assert.False(t, cfg.Markdown)
	assert.True(t, cfg.Checkpointing())
}

func TestLoad_DotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DIALOGTREE_SESSION=from-file\n"), 0644))
	// Registered so the variable set by godotenv is cleared after the test.
	t.Setenv("DIALOGTREE_SESSION", "")
	require.NoError(t, os.Unsetenv("DIALOGTREE_SESSION"))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.SessionID)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"DIALOGTREE_REDIS_DB":    "three",
		"DIALOGTREE_SESSION_TTL": "forever",
		"DIALOGTREE_JSON":        "maybe",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
			assert.Error(t, err)
		})
	}
}

func TestResolveSource(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "dialog.yaml")
	dbPath := filepath.Join(dir, "dialog.db")
	require.NoError(t, os.WriteFile(yamlPath, []byte("nodes: []"), 0644))
	require.NoError(t, os.WriteFile(dbPath, nil, 0644))

	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"no path", Config{}, SourceMemory},
		{"explicit", Config{Source: SourceSQLite, ContentPath: yamlPath}, SourceSQLite},
		{"directory", Config{ContentPath: dir}, SourceLoam},
		{"yaml file", Config{ContentPath: yamlPath}, SourceFile},
		{"sqlite file", Config{ContentPath: dbPath}, SourceSQLite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cfg.ResolveSource()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := Config{ContentPath: filepath.Join(dir, "missing")}.ResolveSource()
	assert.Error(t, err)
}

func TestResolveStart(t *testing.T) {
	assert.Equal(t, "d0", Config{}.ResolveStart(""))
	assert.Equal(t, "intro", Config{}.ResolveStart("intro"))
	assert.Equal(t, "flag", Config{StartNode: "flag"}.ResolveStart("intro"))
}

func TestValidate(t *testing.T) {
	valid := Default()
	assert.NoError(t, valid.Validate())

	cases := map[string]func(*Config){
		"unknown source":    func(c *Config) { c.Source = "ftp" },
		"file without path": func(c *Config) { c.Source = SourceFile },
		"unknown state":     func(c *Config) { c.StateBackend = "etcd" },
		"negative ttl":      func(c *Config) { c.SessionTTL = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
