package config

import (
	"encoding/json"
	"os"

	"github.com/mindcase/mindcase/internal/flagx"
	"github.com/mindcase/mindcase/internal/timex"
)

// JsonConfig is the on-disk shape. Empty fields leave defaults untouched.
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	ExercisesBaseURL string         `json:"exercises_base_url"`
	ExercisesAPIKey  string         `json:"exercises_api_key"`
	DBPath           string         `json:"db_path"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	CacheTTL         timex.Duration `json:"cache_ttl"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. It panics on
// read or decode errors, matching the flag parser.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.ExercisesBaseURL, jc.ExercisesBaseURL)
	setString(&cfg.ExercisesAPIKey, jc.ExercisesAPIKey)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CacheTTL.Duration > 0 {
		cfg.CacheTTL = jc.CacheTTL.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
