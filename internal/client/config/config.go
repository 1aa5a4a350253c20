package config

import (
	"time"

	"github.com/mindcase/mindcase/internal/client/exercises"
)

// Config holds runtime settings for the mindcase client.
type Config struct {
	APIBaseURL       string
	ExercisesBaseURL string
	ExercisesAPIKey  string
	DBPath           string
	RequestTimeout   time.Duration
	CacheTTL         time.Duration
	LogLevel         string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.ExercisesBaseURL = exercises.DefaultBaseURL
	c.ExercisesAPIKey = exercises.PlaceholderAPIKey
	c.DBPath = "mindcase.db"
	c.RequestTimeout = 15 * time.Second
	c.CacheTTL = exercises.DefaultTTL
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then JSON, environment and flags in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
