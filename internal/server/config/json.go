package config

import (
	"encoding/json"
	"os"

	"github.com/mindcase/mindcase/internal/flagx"
	"github.com/mindcase/mindcase/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Durations accept "24h" style strings or integer nanoseconds.
type JsonConfig struct {
	Addr          string         `json:"addr"`
	SecretKey     string         `json:"secret_key"`
	TokenTTL      timex.Duration `json:"token_ttl"`
	CalorieBudget int            `json:"calorie_budget"`
	LogLevel      string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config, if any, into config. Zero
// values in the file keep the current setting. It panics if the file cannot
// be read or decoded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenTTL.Duration > 0 {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.CalorieBudget > 0 {
		config.CalorieBudget = c.CalorieBudget
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
