package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glassinfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverlay(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
log_level: debug
catalogs: [Schott, Ohara]
rindexinfo:
  timeout: 5s
buchdahl:
  b: -0.07
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"Schott", "Ohara"}, cfg.Catalogs)
	assert.Equal(t, 5*time.Second, cfg.RIndexInfo.Timeout)
	assert.Equal(t, -0.07, cfg.Buchdahl.B)
	assert.Equal(t, DefaultBuchdahl().M, cfg.Buchdahl.M, "unset fields keep defaults")
	assert.Equal(t, "custom_glasses", cfg.CustomGlassDir)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed", "catalogs: [Schott\n", "parsing config"},
		{"log level", "log_level: loud\n", `unknown log_level "loud"`},
		{"no catalogs", "catalogs: []\n", "catalogs must not be empty"},
		{"timeout", "rindexinfo:\n  timeout: 0s\n", "timeout must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
