package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig writes a config that keeps custom glasses inside a temp dir.
func testConfig(t *testing.T) (cfgPath, customDir string) {
	t.Helper()
	dir := t.TempDir()
	customDir = filepath.Join(dir, "custom")
	cfgPath = filepath.Join(dir, "glassinfo.yaml")
	body := fmt.Sprintf("log_level: error\ncatalogs: [Schott, Ohara]\ncustom_glass_dir: %s\n", customDir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))
	return cfgPath, customDir
}

func runCLI(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), append([]string{"-config", cfgPath}, args...), &out)
	return out.String(), err
}

func TestRunCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"index", []string{"index", "N-BK7", "Schott"}, []string{"Schott N-BK7: 517.642", "d ", "587.5618"}},
		{"index spec", []string{"index", "N-BK7,Schott"}, []string{"Schott N-BK7: 517.642"}},
		{"index defaults", []string{"index", "N-BK7"}, []string{"Schott N-BK7"}},
		{"decode", []string{"decode", "N-SF57HT", "S-TIM2"}, []string{"N-SF57HT", "SF57", "HT", "TIM2"}},
		{"catalogs", []string{"catalogs"}, []string{"Schott", "Ohara", "CDGM"}},
		{"list", []string{"list", "Schott"}, []string{"N-BK7", "N-SF6"}},
		{"stats", []string{"stats", "Schott"}, []string{"Schott:", "groups", "prefixes"}},
		{"map", []string{"map", "Schott"}, []string{"N-BK7", "nd ", "vd "}},
		{"map partials", []string{"map", "-partials", "g,F", "Ohara"}, []string{"S-BSL 7"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfgPath, _ := testConfig(t)
			out, err := runCLI(t, cfgPath, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"polish"}},
		{"missing args", []string{"index"}},
		{"unknown glass", []string{"index", "NOPE-1", "Schott"}},
		{"unknown catalog", []string{"list", "Zeiss"}},
		{"bad nd", []string{"model", "one", "64"}},
		{"bad partials", []string{"map", "-partials", "g", "Schott"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfgPath, _ := testConfig(t)
			_, err := runCLI(t, cfgPath, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRunModelPersists(t *testing.T) {
	t.Parallel()

	cfgPath, customDir := testConfig(t)

	out, err := runCLI(t, cfgPath, "model", "1.62", "36.4", "MyFlint")
	require.NoError(t, err)
	assert.Contains(t, out, "ModelGlass MyFlint: 620.364")
	assert.FileExists(t, filepath.Join(customDir, "custom_glasses.yaml"))

	// A fresh run restores the glass from disk.
	out, err = runCLI(t, cfgPath, "custom")
	require.NoError(t, err)
	assert.Contains(t, out, "MyFlint")
	assert.Contains(t, out, "620.364")

	out, err = runCLI(t, cfgPath, "index", "MyFlint", "user")
	require.NoError(t, err)
	assert.Contains(t, out, "user MyFlint: 620.364")
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "WARN", parseLogLevel("warn").String())
	assert.Equal(t, "INFO", parseLogLevel("verbose").String())
}
