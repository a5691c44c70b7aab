// Package config loads the application configuration from defaults, an
// optional YAML file, a .env file and SIRO_* environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"fjacquet/siro-files/internal/logging"
)

// EnvFile is the dotenv file looked up by LoadEnv.
const EnvFile = ".env"

// LoadEnv loads environment variables from a .env file in the current
// directory or its parent. Variables already set are not overridden. It
// returns the file loaded, or "" when none was found.
func LoadEnv(logger logging.Logger) string {
	logger = logging.OrDefault(logger)

	envFile := EnvFile
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", EnvFile)
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			logger.Debug("No .env file found, using environment variables")
			return ""
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.WithError(err).Warn("Error loading .env file")
		return ""
	}
	logger.Debug("Loaded environment variables", logging.Field{Key: logging.FieldFile, Value: envFile})
	return envFile
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
