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

	t.Run("loads values from the file given via -config", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_base_url": "https://notes.example",
			"state_db_path":   "/var/lib/notedesk/state.db",
			"request_timeout": "10s",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://notes.example", cfg.ServerBaseURL)
		assert.Equal(t, "/var/lib/notedesk/state.db", cfg.StateDBPath)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_base_url": "https://notes.example",
		})
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://notes.example", cfg.ServerBaseURL)
		assert.Equal(t, "notedesk.db", cfg.StateDBPath)
	})

	t.Run("no config flag means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{ServerBaseURL: "kept"}
		parseJson(cfg)
		assert.Equal(t, "kept", cfg.ServerBaseURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
