// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/warp/statutory-engine/tables"
)

// Config is the server configuration.
type Config struct {
	Port        int
	LogLevel    string
	CORSOrigins []string
	TablesFile  string // empty = embedded tables
}

// Load reads .env files if present, then the environment.
func Load(files ...string) (Config, error) {
	// A missing .env is normal in containers; the environment is authoritative.
	_ = godotenv.Load(files...)
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:        8080,
		LogLevel:    getOrDefault(getenv, "LOG_LEVEL", "info"),
		CORSOrigins: splitList(getOrDefault(getenv, "CORS_ORIGINS", "http://localhost:5173,http://localhost:8080")),
		TablesFile:  strings.TrimSpace(getenv("TABLES_FILE")),
	}

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

// Tables returns the override tables when TablesFile is set, else the embedded ones.
func (c Config) Tables() (*tables.Tables, error) {
	if c.TablesFile == "" {
		return tables.Default(), nil
	}
	return tables.LoadFile(c.TablesFile)
}

// NewLogger builds a JSON production logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func getOrDefault(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
