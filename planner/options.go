package planner

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/shoproute/gridgraph"
	"github.com/katalvlaran/shoproute/tsp"
)

// Options configures a Planner.
//
// Width, Height – grid size; 0 uses the plan's own size (10×10 when unset).
// ReturnTrip    – add a final leg back to the entrance.
// Connectivity  – gridgraph.Conn8 (corner-safe diagonals) or gridgraph.Conn4.
// MaxStops      – reject longer lists (tsp.ErrTooManyStops); 0 disables.
// TimeLimit     – bound the order search (tsp.ErrTimeLimit); 0 disables.
// Workers       – parallel order scoring when > 1.
// CacheLegs     – memoize leg lengths for the duration of one request.
// Logger        – stage logging; nil discards.
type Options struct {
	Width        int
	Height       int
	ReturnTrip   bool
	Connectivity gridgraph.Connectivity
	MaxStops     int
	TimeLimit    time.Duration
	Workers      int
	CacheLegs    bool
	Logger       *slog.Logger
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// DefaultOptions returns the reference policy: plan-sized grid, return trip,
// corner-safe diagonals, tsp.DefaultMaxStops, no time limit, sequential
// scoring, cached legs.
func DefaultOptions() Options {
	return Options{
		ReturnTrip:   true,
		Connectivity: gridgraph.Conn8,
		MaxStops:     tsp.DefaultMaxStops,
		CacheLegs:    true,
	}
}

// WithDimensions fixes the grid size instead of using the plan's.
func WithDimensions(w, h int) Option {
	return func(o *Options) {
		o.Width, o.Height = w, h
	}
}

// WithReturnTrip toggles the final leg back to the entrance.
func WithReturnTrip(on bool) Option {
	return func(o *Options) {
		o.ReturnTrip = on
	}
}

// WithConnectivity selects the movement policy.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = c
	}
}

// WithMaxStops caps the number of products per route.
func WithMaxStops(n int) Option {
	return func(o *Options) {
		o.MaxStops = n
	}
}

// WithTimeLimit bounds the order search.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithWorkers sets the number of goroutines scoring orders.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLegCache toggles leg-length memoization.
func WithLegCache(on bool) Option {
	return func(o *Options) {
		o.CacheLegs = on
	}
}

// WithLogger sets the stage logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
