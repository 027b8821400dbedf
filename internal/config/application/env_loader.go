package application

import (
	"os"

	"github.com/joho/godotenv"

	"downtimed/internal/infrastructure/logger"
)

// LoadEnvFile merges variables from a .env file into the process
// environment before the runtime config reads it. An empty path means
// ./.env. Returns whether a file was loaded; running without one is the
// normal case on a deployed board.
func LoadEnvFile(log *logger.Logger, envFile string) bool {
	if envFile == "" {
		envFile = ".env"
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		log.Debug("No .env file found", "path", envFile)
		return false
	}

	if err := godotenv.Load(envFile); err != nil {
		log.Warn("Failed to load .env file", "path", envFile, "err", err)
		return false
	}

	log.Debug("Loaded .env file", "path", envFile)
	return true
}
