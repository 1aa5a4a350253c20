// Package config loads runtime configuration for the mindcase client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment, after loading a dotenv file (-env, default ".env").
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the mindcase backend API
//	-d string   path of the local SQLite store
//	-t int      request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "exercises_base_url": "https://api.api-ninjas.com/v1/exercises",
//	  "exercises_api_key": "...",
//	  "db_path": "mindcase.db",
//	  "request_timeout": "15s",
//	  "cache_ttl": "24h",
//	  "log_level": "info"
//	}
//
// # Environment
//
// MINDCASE_API_BASE_URL, MINDCASE_EXERCISES_API_KEY, MINDCASE_DB_PATH and
// MINDCASE_LOG_LEVEL. The catalog key is expected here rather than in the
// JSON file so it stays out of version control.
package config
