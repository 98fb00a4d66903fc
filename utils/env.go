package utils

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadEnv loads .env from the working directory when present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, continuing")
	}
}

// LoadEnvFile loads a specific env file without overriding variables that are
// already set.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}
