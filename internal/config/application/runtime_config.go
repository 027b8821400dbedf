package application

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"
)

// RuntimeConfig holds all runtime configuration from CLI flags, environment
// variables, and the optional .env file.
type RuntimeConfig struct {
	// Data directory holding the journal and the history database
	DataDir string

	// Seconds between heartbeats
	HeartbeatInterval int

	// Disable the sqlite history mirror
	NoHistory bool

	// Status API configuration (serve mode only)
	APIAddr string
	APIKey  string
}

// LoadRuntimeConfig loads configuration with precedence: CLI flags > env
// vars > .env file > defaults. The data dir and interval have no defaults;
// they describe hardware-specific paths and cadence the operator must pick.
// intervalSet distinguishes an explicit --heartbeat-interval 0 (kept, and
// rejected by Valid) from an absent flag.
func LoadRuntimeConfig(dataDir string, heartbeatInterval int, intervalSet bool, noHistory bool, apiAddr string) *RuntimeConfig {
	return &RuntimeConfig{
		DataDir:           getValue(dataDir, "DOWNTIMED_DATA_DIR", ""),
		HeartbeatInterval: getIntValue(heartbeatInterval, intervalSet, "DOWNTIMED_HEARTBEAT_INTERVAL", 0),
		NoHistory:         noHistory || getBoolEnv("DOWNTIMED_NO_HISTORY", false),
		APIAddr:           getValue(apiAddr, "DOWNTIMED_API_ADDR", ":8080"),
		APIKey:            getValue("", "DOWNTIMED_API_KEY", ""),
	}
}

// Interval returns the heartbeat interval as a duration.
func (c *RuntimeConfig) Interval() time.Duration {
	return time.Duration(c.HeartbeatInterval) * time.Second
}

// Valid reports configuration problems keyed by field name.
func (c *RuntimeConfig) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string, 2)

	if c.DataDir == "" {
		problems["data-dir"] = "'data-dir' is required"
	}

	if c.HeartbeatInterval <= 0 {
		problems["heartbeat-interval"] = "interval should be more than zero"
	}

	return problems
}

// getValue returns the first non-empty value from CLI flag, env var, or default
func getValue(cliValue, envKey, defaultValue string) string {
	if cliValue != "" {
		return cliValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getIntValue returns the first usable value from CLI flag, env var, or default
func getIntValue(cliValue int, cliSet bool, envKey string, defaultValue int) int {
	if cliSet || cliValue != 0 {
		return cliValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		if parsed, err := strconv.Atoi(envValue); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable
func getBoolEnv(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "true" || value == "1" || value == "yes" {
		return true
	}
	if value == "false" || value == "0" || value == "no" {
		return false
	}
	return defaultValue
}
