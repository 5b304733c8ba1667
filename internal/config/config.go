// Package config loads environment configuration for boxgeom.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDataDir          = "./data"
	defaultLayoutFile       = "layout.yaml"
	defaultBrowserTimeoutMs = 15000
	defaultBrowserHeadless  = true
	defaultWindowWidth      = 1280
	defaultWindowHeight     = 800
	defaultMonitorIdx       = 1
	defaultLogLevel         = "info"
)

// Config holds runtime configuration values.
type Config struct {
	DataDir          string
	LayoutPath       string
	PageURL          string
	BrowserTimeoutMs int
	BrowserHeadless  bool
	WindowWidth      int
	WindowHeight     int
	MonitorIndex     int
	LogLevel         string
}

// BrowserTimeout returns the browser timeout as a duration.
func (c Config) BrowserTimeout() time.Duration {
	return time.Duration(c.BrowserTimeoutMs) * time.Millisecond
}

// Load reads configuration from $DATA_DIR/.env and environment variables.
// Variables already set in the process environment take precedence.
func Load() (Config, error) {
	cfg := Config{
		DataDir:          envString("DATA_DIR", defaultDataDir),
		BrowserTimeoutMs: defaultBrowserTimeoutMs,
		BrowserHeadless:  defaultBrowserHeadless,
		WindowWidth:      defaultWindowWidth,
		WindowHeight:     defaultWindowHeight,
		MonitorIndex:     defaultMonitorIdx,
		LogLevel:         defaultLogLevel,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.LayoutPath = envString("LAYOUT_PATH", filepath.Join(cfg.DataDir, defaultLayoutFile))
	cfg.PageURL = envString("PAGE_URL", "")
	cfg.BrowserHeadless = envBool("BROWSER_HEADLESS", cfg.BrowserHeadless)

	timeout, err := envInt("BROWSER_TIMEOUT_MS", cfg.BrowserTimeoutMs)
	if err != nil {
		return Config{}, err
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("BROWSER_TIMEOUT_MS must be > 0")
	}
	cfg.BrowserTimeoutMs = timeout

	width, err := envInt("WINDOW_WIDTH", cfg.WindowWidth)
	if err != nil {
		return Config{}, err
	}
	height, err := envInt("WINDOW_HEIGHT", cfg.WindowHeight)
	if err != nil {
		return Config{}, err
	}
	if width <= 0 || height <= 0 {
		return Config{}, fmt.Errorf("WINDOW_WIDTH and WINDOW_HEIGHT must be > 0")
	}
	cfg.WindowWidth = width
	cfg.WindowHeight = height

	monitorIdx, err := envInt("MONITOR_INDEX", cfg.MonitorIndex)
	if err != nil {
		return Config{}, err
	}
	if monitorIdx < 1 {
		return Config{}, fmt.Errorf("MONITOR_INDEX must be >= 1")
	}
	cfg.MonitorIndex = monitorIdx

	level, err := normalizeLogLevel(envString("LOG_LEVEL", cfg.LogLevel))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// normalizeLogLevel validates a log level name.
func normalizeLogLevel(value string) (string, error) {
	level := strings.ToLower(strings.TrimSpace(value))
	switch level {
	case "debug", "info", "warn", "error":
		return level, nil
	default:
		return "", fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding the environment.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
