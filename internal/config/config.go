// Package config loads runtime settings from the environment and an optional .env file
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-textquest/internal/errors"
)

// Storage selects the snapshot backend
type Storage string

// Snapshot backends
const (
	StorageFile   Storage = "file"
	StorageRedis  Storage = "redis"
	StorageSQLite Storage = "sqlite"
)

// Log levels accepted in LogLevel
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config holds everything the CLI needs to build a game
type Config struct {
	// SaveRoot is the directory file saves go to
	SaveRoot string `env:"TEXTQUEST_SAVE_ROOT" envDefault:"Saves"`
	SaveSlot string `env:"TEXTQUEST_SAVE_SLOT" envDefault:"SaveData"`

	Storage    Storage `env:"TEXTQUEST_STORAGE"     envDefault:"file"`
	RedisAddr  string  `env:"TEXTQUEST_REDIS_ADDR"  envDefault:"localhost:6379"`
	SQLitePath string  `env:"TEXTQUEST_SQLITE_PATH" envDefault:"textquest.db"`

	// Seed makes runs reproducible; 0 uses the toolkit's default roller
	Seed uint64 `env:"TEXTQUEST_SEED"`

	// Pacing is the pause after each screen; 0 disables it
	Pacing time.Duration `env:"TEXTQUEST_PACING" envDefault:"500ms"`

	PlayerName string `env:"TEXTQUEST_PLAYER_NAME"`
	LogLevel   string `env:"TEXTQUEST_LOG_LEVEL" envDefault:"warn"`
}

// Load reads envFiles (or ./.env when none are given and it exists) and then
// parses the environment. Variables already set win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to load .env")
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to load %s", strings.Join(envFiles, ", "))
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable together
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("SaveSlot", c.SaveSlot, vb)
	errors.ValidateEnum("Storage", string(c.Storage),
		[]string{string(StorageFile), string(StorageRedis), string(StorageSQLite)}, vb)
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel),
		[]string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}, vb)

	errors.ValidateMin("Pacing", int(c.Pacing), 0, vb)

	switch c.Storage {
	case StorageFile:
		errors.ValidateRequired("SaveRoot", c.SaveRoot, vb)
	case StorageRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	case StorageSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}

	return vb.Build()
}

// SlogLevel maps LogLevel onto slog
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
