package utils

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv pulls a local .env into the process environment; missing files are
// fine, config falls back to defaults.
func LoadEnv(logger *zap.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file loaded, using environment defaults")
		return
	}
	logger.Info(".env file loaded")
}
