package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-textquest/internal/config"
	"github.com/KirkDiggler/rpg-textquest/internal/errors"
)

var allKeys = []string{
	"TEXTQUEST_SAVE_ROOT",
	"TEXTQUEST_SAVE_SLOT",
	"TEXTQUEST_STORAGE",
	"TEXTQUEST_REDIS_ADDR",
	"TEXTQUEST_SQLITE_PATH",
	"TEXTQUEST_SEED",
	"TEXTQUEST_PACING",
	"TEXTQUEST_PLAYER_NAME",
	"TEXTQUEST_LOG_LEVEL",
}

// clearEnv unsets every key for the test and restores it afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Saves", cfg.SaveRoot)
	assert.Equal(t, "SaveData", cfg.SaveSlot)
	assert.Equal(t, config.StorageFile, cfg.Storage)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 500*time.Millisecond, cfg.Pacing)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEXTQUEST_STORAGE", "sqlite")
	t.Setenv("TEXTQUEST_SQLITE_PATH", "/tmp/quest.db")
	t.Setenv("TEXTQUEST_SEED", "42")
	t.Setenv("TEXTQUEST_PACING", "0s")
	t.Setenv("TEXTQUEST_LOG_LEVEL", "DEBUG")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageSQLite, cfg.Storage)
	assert.Equal(t, "/tmp/quest.db", cfg.SQLitePath)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Zero(t, cfg.Pacing)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEXTQUEST_SAVE_SLOT", "from_env")

	path := filepath.Join(t.TempDir(), "quest.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"TEXTQUEST_SAVE_SLOT=from_file\nTEXTQUEST_PLAYER_NAME=Leonidas\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.SaveSlot, "environment wins over the file")
	assert.Equal(t, "Leonidas", cfg.PlayerName)
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *config.Config)
		field  string
	}{
		{"unknown storage", func(c *config.Config) { c.Storage = "tape" }, "Storage"},
		{"unknown log level", func(c *config.Config) { c.LogLevel = "loud" }, "LogLevel"},
		{"negative pacing", func(c *config.Config) { c.Pacing = -time.Second }, "Pacing"},
		{"empty slot", func(c *config.Config) { c.SaveSlot = " " }, "SaveSlot"},
		{"file without root", func(c *config.Config) { c.SaveRoot = "" }, "SaveRoot"},
		{"redis without address", func(c *config.Config) {
			c.Storage = config.StorageRedis
			c.RedisAddr = ""
		}, "RedisAddr"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				SaveRoot:   "Saves",
				SaveSlot:   "SaveData",
				Storage:    config.StorageFile,
				RedisAddr:  "localhost:6379",
				SQLitePath: "textquest.db",
				LogLevel:   "warn",
			}
			require.NoError(t, cfg.Validate())

			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
