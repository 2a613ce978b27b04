// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsparse/cmd/spmv/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spmv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyFileIsDefault(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "orientation: column\nrepeat: 3\nlog:\n  level: debug\n"))
	require.NoError(t, err)
	require.Equal(t, config.OrientationColumn, cfg.Orientation)
	require.Equal(t, 3, cfg.Repeat)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, config.DefaultLogFormat, cfg.Log.Format, "unset nested key keeps default")
	require.Equal(t, config.DefaultBTreeDegree, cfg.BTreeDegree)

	lvl, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeConfig(t, "repat: 3\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeConfig(t, "repeat: [1\n"))
	require.Error(t, err)

	_, err = config.Load(writeConfig(t, "orientation: diagonal\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"orientation":  func(c *config.Config) { c.Orientation = "" },
		"repeat":       func(c *config.Config) { c.Repeat = 0 },
		"btree degree": func(c *config.Config) { c.BTreeDegree = 1 },
		"grid limit":   func(c *config.Config) { c.GridLimit = -1 },
		"log level":    func(c *config.Config) { c.Log.Level = "loud" },
		"log format":   func(c *config.Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestMarshal_LoadsBack(t *testing.T) {
	want := config.Default()
	want.Orientation = config.OrientationColumn
	want.MetricsFile = "/tmp/spmv.prom"
	raw, err := want.Marshal()
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, yaml.Unmarshal(raw, &got))
	require.Equal(t, want, got)

	cfg, err := config.Load(writeConfig(t, string(raw)))
	require.NoError(t, err)
	require.Equal(t, want, cfg)
}
