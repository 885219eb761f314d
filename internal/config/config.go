// Package config loads the shoproute YAML configuration.
//
// Every key is optional; Load starts from Default and overlays the file.
//
//	grid:
//	  width: 10            # 0 = use each plan's own size
//	  height: 10
//	planner:
//	  return_trip: true
//	  movement: diagonal   # diagonal | orthogonal
//	  max_stops: 8         # 0 = unlimited
//	  time_limit: 2s       # empty = unlimited
//	  workers: 1
//	  cache_legs: true
//	store:
//	  driver: sqlite       # sqlite | yaml | memory
//	  path: shoproute.db
//	log:
//	  level: info          # debug | info | warn | error
//	  format: text         # text | json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shoproute/gridgraph"
	"github.com/katalvlaran/shoproute/mapstore"
	"github.com/katalvlaran/shoproute/planner"
	"github.com/katalvlaran/shoproute/tsp"
)

// maxFileSize bounds the configuration file read by Load.
const maxFileSize = 1 << 20

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Movement names accepted by planner.movement.
const (
	MovementDiagonal   = "diagonal"
	MovementOrthogonal = "orthogonal"
)

// Config is the full configuration file.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Planner PlannerConfig `yaml:"planner"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig fixes the grid size; zero values defer to each floor plan.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlannerConfig mirrors planner.Options.
type PlannerConfig struct {
	ReturnTrip bool   `yaml:"return_trip"`
	Movement   string `yaml:"movement"`
	MaxStops   int    `yaml:"max_stops"`
	TimeLimit  string `yaml:"time_limit"`
	Workers    int    `yaml:"workers"`
	CacheLegs  bool   `yaml:"cache_legs"`
}

// StoreConfig selects the floor-plan store.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Width:  0,
			Height: 0,
		},
		Planner: PlannerConfig{
			ReturnTrip: true,
			Movement:   MovementDiagonal,
			MaxStops:   tsp.DefaultMaxStops,
			Workers:    1,
			CacheLegs:  true,
		},
		Store: StoreConfig{
			Driver: mapstore.DriverSQLite,
			Path:   "shoproute.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a .yaml/.yml file over Default and validates the result.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("%w: grid size must be non-negative, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if (c.Grid.Width == 0) != (c.Grid.Height == 0) {
		return fmt.Errorf("%w: grid width and height must both be set or both be 0", ErrInvalid)
	}
	switch c.Planner.Movement {
	case MovementDiagonal, MovementOrthogonal:
	default:
		return fmt.Errorf("%w: planner.movement must be %q or %q, got %q",
			ErrInvalid, MovementDiagonal, MovementOrthogonal, c.Planner.Movement)
	}
	if c.Planner.MaxStops < 0 {
		return fmt.Errorf("%w: planner.max_stops must be non-negative, got %d", ErrInvalid, c.Planner.MaxStops)
	}
	if c.Planner.Workers < 0 {
		return fmt.Errorf("%w: planner.workers must be non-negative, got %d", ErrInvalid, c.Planner.Workers)
	}
	if _, err := c.TimeLimit(); err != nil {
		return err
	}
	switch c.Store.Driver {
	case mapstore.DriverSQLite, mapstore.DriverYAML:
		if c.Store.Path == "" {
			return fmt.Errorf("%w: store.path is required for driver %q", ErrInvalid, c.Store.Driver)
		}
	case mapstore.DriverMemory:
	default:
		return fmt.Errorf("%w: unknown store.driver %q", ErrInvalid, c.Store.Driver)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// TimeLimit parses planner.time_limit; empty means no limit.
func (c *Config) TimeLimit() (time.Duration, error) {
	if c.Planner.TimeLimit == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Planner.TimeLimit)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid planner.time_limit %q: %v", ErrInvalid, c.Planner.TimeLimit, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: planner.time_limit must be non-negative, got %s", ErrInvalid, d)
	}

	return d, nil
}

// LogLevel parses log.level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("%w: invalid log.level %q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}

// Connectivity maps planner.movement to the grid movement policy.
func (c *Config) Connectivity() gridgraph.Connectivity {
	if c.Planner.Movement == MovementOrthogonal {
		return gridgraph.Conn4
	}

	return gridgraph.Conn8
}

// PlannerOptions converts the planner and grid sections into planner options.
// The config must have passed Validate.
func (c *Config) PlannerOptions() []planner.Option {
	limit, _ := c.TimeLimit()
	opts := []planner.Option{
		planner.WithReturnTrip(c.Planner.ReturnTrip),
		planner.WithConnectivity(c.Connectivity()),
		planner.WithMaxStops(c.Planner.MaxStops),
		planner.WithTimeLimit(limit),
		planner.WithWorkers(c.Planner.Workers),
		planner.WithLegCache(c.Planner.CacheLegs),
	}
	if c.Grid.Width > 0 && c.Grid.Height > 0 {
		opts = append(opts, planner.WithDimensions(c.Grid.Width, c.Grid.Height))
	}

	return opts
}
