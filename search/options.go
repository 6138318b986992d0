package search

import "context"

// Options configures a Find call.
//
// MaxDepth   – BFS depth cap. Must be >= 0; 0 only matches start == target.
// MaxNodes   – cap on total distinct states materialized across all levels.
// Ctx        – polled once per BFS level for cooperative cancellation
//
//	(spec.md §5 "a shared atomic flag is polled between BFS levels").
type Options struct {
	MaxDepth int
	MaxNodes int
	Ctx      context.Context
}

// Option is a functional option for Find.
type Option func(*Options)

// DefaultOptions returns the zero-configured Options: no caps beyond
// the generous defaults below, and a background context.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 64,
		MaxNodes: 1_000_000,
		Ctx:      context.Background(),
	}
}

// WithMaxDepth sets the BFS depth cap.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithMaxNodes sets the cap on total distinct states materialized.
func WithMaxNodes(n int) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// WithContext sets the cancellation context polled between BFS levels.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}
