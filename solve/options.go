package solve

import (
	"context"

	"github.com/arcosphere-go/catalyst/internal/obslog"
)

// Options configures a Solve call (spec.md §6 "options").
type Options struct {
	// MaxCatalystSize caps catalyst enumeration (cap for enumeration).
	MaxCatalystSize int
	// MaxDepth caps each per-candidate BFS's depth.
	MaxDepth int
	// MaxNodes caps the number of distinct states each per-candidate
	// BFS materializes across all of its levels.
	MaxNodes int
	// Repetitions is the problem multiplier n (spec.md §3 "Problem").
	Repetitions int
	// Parallel permits dispatching same-size-tier candidate searches
	// to a worker pool instead of running them one at a time.
	Parallel bool
	// Ctx is polled for cooperative cancellation between catalyst
	// candidates and, within each candidate's search, between BFS
	// levels.
	Ctx context.Context
	// Logger, when non-nil, receives structured trace events.
	Logger *obslog.Logger
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns generous default caps, sequential execution,
// a background context and no logging.
func DefaultOptions() Options {
	return Options{
		MaxCatalystSize: 4,
		MaxDepth:        64,
		MaxNodes:        1_000_000,
		Repetitions:     1,
		Parallel:        false,
		Ctx:             context.Background(),
		Logger:          nil,
	}
}

func WithMaxCatalystSize(n int) Option { return func(o *Options) { o.MaxCatalystSize = n } }
func WithMaxDepth(n int) Option        { return func(o *Options) { o.MaxDepth = n } }
func WithMaxNodes(n int) Option        { return func(o *Options) { o.MaxNodes = n } }
func WithRepetitions(n int) Option     { return func(o *Options) { o.Repetitions = n } }
func WithParallel(p bool) Option       { return func(o *Options) { o.Parallel = p } }
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}
func WithLogger(l *obslog.Logger) Option { return func(o *Options) { o.Logger = l } }
