package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger with the handful of events the solver
// emits. The zero value is not usable; construct with New or Nop.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger writing to w at the given minimum level.
func New(w io.Writer, level zerolog.Level) *Logger {
	z := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &Logger{z: z}
}

// Default builds a Logger writing to os.Stderr at Debug level — the
// verbosity solve.Options.Logger is documented to emit at.
func Default() *Logger {
	return New(os.Stderr, zerolog.DebugLevel)
}

// CatalystTier logs one catalyst-size tier the solver is about to
// search, at Debug level.
func (l *Logger) CatalystTier(size int, candidate string) {
	if l == nil {
		return
	}
	l.z.Debug().Int("catalyst_size", size).Str("candidate", candidate).Msg("catalyst tier")
}

// BFSLevel logs one BFS level explored for a given candidate, at
// Debug level.
func (l *Logger) BFSLevel(candidate string, depth, frontierSize int) {
	if l == nil {
		return
	}
	l.z.Debug().Str("candidate", candidate).Int("depth", depth).Int("frontier_size", frontierSize).Msg("bfs level")
}

// NoSolution logs that the solver exhausted its search space without
// finding a path, at Warn level.
func (l *Logger) NoSolution(maxCatalystSize int) {
	if l == nil {
		return
	}
	l.z.Warn().Int("max_catalyst_size", maxCatalystSize).Msg("no solution found")
}

// Truncated logs that a cap tripped before the search completed, at
// Warn level.
func (l *Logger) Truncated(cap string) {
	if l == nil {
		return
	}
	l.z.Warn().Str("cap", cap).Msg("search truncated")
}
