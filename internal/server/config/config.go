// Package config handles configuration for the development backend,
// including defaults, JSON overlay, environment and command-line flags.
package config

import "time"

// Config holds runtime settings for the mindcase development backend.
//
// Fields:
//   - Addr: HTTP bind address.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - TokenTTL: lifetime of issued tokens.
//   - CalorieBudget: daily calorie allowance used by the nutrition summary.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Addr          string
	SecretKey     string
	TokenTTL      time.Duration
	CalorieBudget int
	LogLevel      string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":5000"
	c.SecretKey = "secretKey"
	c.TokenTTL = 24 * time.Hour
	c.CalorieBudget = 2000
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
