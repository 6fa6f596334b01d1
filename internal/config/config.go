// Package config provides runtime configuration values for the tracker.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultFileName  = "inventory.json"
	defaultThreshold = 5
)

// Config holds the data file location and reporting knobs.
type Config struct {
	DataDir           string
	FileName          string
	LowStockThreshold int
	LogLevel          slog.Level
}

// Path returns the full path of the inventory file.
func (c Config) Path() string {
	return filepath.Join(c.DataDir, c.FileName)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func levelenv(key string, def slog.Level) slog.Level {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return def
	}
	return l
}

// documentsDir mirrors the per-user Documents location of desktop platforms.
func documentsDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, "Documents")
}

// Load collects configuration from the environment with defaults. Values
// from envFile (or ./.env when envFile is empty) fill in variables that are
// not already set. A missing env file is not an error; one that cannot be
// parsed is.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	return Config{
		DataDir:           getenv("INVENTORY_DIR", documentsDir()),
		FileName:          getenv("INVENTORY_FILE", defaultFileName),
		LowStockThreshold: atoienv("LOW_STOCK_THRESHOLD", defaultThreshold),
		LogLevel:          levelenv("LOG_LEVEL", slog.LevelInfo),
	}, nil
}
