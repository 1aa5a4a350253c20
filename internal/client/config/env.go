package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/mindcase/mindcase/internal/flagx"
)

const (
	EnvAPIBaseURL      = "MINDCASE_API_BASE_URL"
	EnvExercisesAPIKey = "MINDCASE_EXERCISES_API_KEY"
	EnvDBPath          = "MINDCASE_DB_PATH"
	EnvLogLevel        = "MINDCASE_LOG_LEVEL"
)

// parseEnv loads the dotenv file (variables already set in the process win)
// and overlays cfg with any MINDCASE_* variables. A missing dotenv file is
// not an error.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(flagx.EnvFile()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	lookup(&cfg.APIBaseURL, EnvAPIBaseURL)
	lookup(&cfg.ExercisesAPIKey, EnvExercisesAPIKey)
	lookup(&cfg.DBPath, EnvDBPath)
	lookup(&cfg.LogLevel, EnvLogLevel)
}

func lookup(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
