package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tripgraph/builder"
	"github.com/katalvlaran/tripgraph/config"
	"github.com/katalvlaran/tripgraph/dijkstra"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tripgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
data: /srv/trips.csv
from: 1
to: 2
dimensions: [time]
strategy: heap
log:
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/trips.csv", cfg.Data)
	assert.Equal(t, 1, cfg.From)
	assert.Equal(t, 2, cfg.To)
	assert.Equal(t, []string{"time"}, cfg.Dimensions)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Log.Debug)
	require.NoError(t, cfg.Validate())

	s, err := cfg.SearchStrategy()
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyHeap, s)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "to: 42\n"))
	require.NoError(t, err)
	assert.Equal(t, 1909, cfg.From)
	assert.Equal(t, 42, cfg.To)
	assert.Equal(t, []string{"cost", "time"}, cfg.Dimensions)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := config.Load(writeFile(t, "from: [not a number\n"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(config.EnvData, "/tmp/other.csv")
	t.Setenv(config.EnvLogFormat, "JSON")
	t.Setenv(config.EnvDebug, "YES")

	cfg := config.Default()
	cfg.ApplyEnv()
	assert.Equal(t, "/tmp/other.csv", cfg.Data)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.Debug)
}

func TestValidate(t *testing.T) {
	require.NoError(t, config.Default().Validate())

	dims, err := config.Default().DimensionList()
	require.NoError(t, err)
	assert.Equal(t, []builder.Dimension{builder.DimensionCost, builder.DimensionDuration}, dims)

	bad := []func(*config.Config){
		func(c *config.Config) { c.Data = "" },
		func(c *config.Config) { c.Dimensions = nil },
		func(c *config.Config) { c.Dimensions = []string{"distance"} },
		func(c *config.Config) { c.Strategy = "astar" },
		func(c *config.Config) { c.Log.Format = "xml" },
	}
	for i, mutate := range bad {
		cfg := config.Default()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, "case %d", i)
	}
}
