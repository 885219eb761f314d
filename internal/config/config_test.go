package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shoproute/gridgraph"
	"github.com/katalvlaran/shoproute/internal/config"
	"github.com/katalvlaran/shoproute/planner"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Planner.ReturnTrip)
	assert.Equal(t, 8, cfg.Planner.MaxStops)
	assert.Equal(t, gridgraph.Conn8, cfg.Connectivity())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "shoproute.yaml", `
grid:
  width: 12
  height: 9
planner:
  movement: orthogonal
  time_limit: 1500ms
  return_trip: false
store:
  driver: yaml
  path: plans/
log:
  level: DEBUG
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Grid.Width)
	assert.False(t, cfg.Planner.ReturnTrip)
	assert.True(t, cfg.Planner.CacheLegs, "untouched key keeps its default")
	assert.Equal(t, gridgraph.Conn4, cfg.Connectivity())
	d, err := cfg.TimeLimit()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)
	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FileChecks(t *testing.T) {
	_, err := config.Load(writeConfig(t, "shoproute.json", "{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extension")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	big := writeConfig(t, "big.yml", "# "+strings.Repeat("x", 1<<20)+"\n")
	_, err = config.Load(big)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse([]byte("planner:\n  max_stop: 3\n"))
	require.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"negative grid":  "grid: {width: -1, height: 5}",
		"half grid":      "grid: {width: 5}",
		"movement":       "planner: {movement: hex}",
		"max stops":      "planner: {max_stops: -1}",
		"workers":        "planner: {workers: -2}",
		"time limit":     "planner: {time_limit: soon}",
		"neg time limit": "planner: {time_limit: -1s}",
		"driver":         "store: {driver: postgres}",
		"store path":     "store: {driver: sqlite, path: ''}",
		"log level":      "log: {level: loud}",
		"log format":     "log: {format: xml}",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestPlannerOptions(t *testing.T) {
	cfg, err := config.Parse([]byte(`
grid: {width: 20, height: 15}
planner: {workers: 4, max_stops: 6, time_limit: 3s, cache_legs: false}
`))
	require.NoError(t, err)

	o := planner.DefaultOptions()
	for _, opt := range cfg.PlannerOptions() {
		opt(&o)
	}
	assert.Equal(t, 20, o.Width)
	assert.Equal(t, 15, o.Height)
	assert.Equal(t, 4, o.Workers)
	assert.Equal(t, 6, o.MaxStops)
	assert.Equal(t, 3*time.Second, o.TimeLimit)
	assert.False(t, o.CacheLegs)
	assert.True(t, o.ReturnTrip)
	assert.Equal(t, gridgraph.Conn8, o.Connectivity)
}
