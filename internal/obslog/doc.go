// Package obslog is a thin wrapper over github.com/rs/zerolog giving
// the solver an optional, structured trace of its search: one event
// per catalyst-size tier attempted and one per BFS level explored.
// A nil *Logger is silent — obslog is never on the solver's control-
// flow path, only its diagnostics path.
package obslog
