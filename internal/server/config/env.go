package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mindcase/mindcase/internal/flagx"
)

const (
	EnvAddr          = "MINDCASE_SERVER_ADDR"
	EnvSecretKey     = "MINDCASE_SERVER_SECRET"
	EnvCalorieBudget = "MINDCASE_CALORIE_BUDGET"
	EnvLogLevel      = "MINDCASE_LOG_LEVEL"
)

// parseEnv loads the dotenv file (process variables win) and overlays config
// with MINDCASE_SERVER_* variables. A missing dotenv file is ignored.
func parseEnv(config *Config) {
	if err := godotenv.Load(flagx.EnvFile()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := os.Getenv(EnvAddr); v != "" {
		config.Addr = v
	}
	if v := os.Getenv(EnvSecretKey); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv(EnvCalorieBudget); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.CalorieBudget = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}
}
