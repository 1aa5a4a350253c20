package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overlays non-empty fields", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"api_base_url":    "https://mindcase.example/api",
			"request_timeout": "7s",
			"cache_ttl":       "1h",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://mindcase.example/api", cfg.APIBaseURL)
		assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
		assert.Equal(t, time.Hour, cfg.CacheTTL)
		assert.Equal(t, "mindcase.db", cfg.DBPath, "untouched field keeps its default")
	})

	t.Run("no flag leaves config alone", func(t *testing.T) {
		os.Args = []string{"testbin"}
		cfg := &Config{APIBaseURL: "keep"}
		parseJson(cfg)
		assert.Equal(t, "keep", cfg.APIBaseURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))
		os.Args = []string{"testbin", "-c", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
