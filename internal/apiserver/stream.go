package apiserver

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/arcosphere-go/catalyst/internal/obslog"
	"github.com/arcosphere-go/catalyst/pathfmt"
	"github.com/arcosphere-go/catalyst/solve"
	"github.com/arcosphere-go/catalyst/token"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// progressWriter relays every zerolog line obslog.Logger writes as a
// websocket text frame, so a streamed solve's tier/level trace reaches
// the client as it happens instead of only at the end. One solve runs
// per connection, so no broadcast fan-out is needed here — unlike a
// Hub that serves many readers, this writer serves exactly one.
type progressWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.conn.WriteMessage(websocket.TextMessage, append([]byte(nil), p...)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// handleSolveStream upgrades the connection, reads one solveRequest as
// JSON, runs the solve with its trace streamed live, then sends a
// final "result" frame and closes.
func (h *APIHandler) handleSolveStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req solveRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(gin.H{"type": "error", "error": "invalid request: " + err.Error()})
		return
	}

	source, err := token.Parse(req.Source)
	if err != nil {
		_ = conn.WriteJSON(gin.H{"type": "error", "error": "invalid source: " + err.Error()})
		return
	}
	target, err := token.Parse(req.Target)
	if err != nil {
		_ = conn.WriteJSON(gin.H{"type": "error", "error": "invalid target: " + err.Error()})
		return
	}

	opts := defaultedSolveOptions(req)
	pw := &progressWriter{conn: conn}
	streamLogger := obslog.New(pw, zerolog.DebugLevel)

	sol, err := solve.Solve(source, target, h.recipes,
		solve.WithMaxCatalystSize(opts.MaxCatalystSize),
		solve.WithMaxDepth(opts.MaxDepth),
		solve.WithMaxNodes(opts.MaxNodes),
		solve.WithRepetitions(opts.Repetitions),
		solve.WithParallel(opts.Parallel),
		solve.WithContext(c.Request.Context()),
		solve.WithLogger(streamLogger),
	)
	if err != nil {
		_ = conn.WriteJSON(gin.H{"type": "error", "error": err.Error()})
		return
	}

	var lines []string
	for _, g := range sol.Groups {
		for _, p := range g.Paths {
			lines = append(lines, pathfmt.FormatPath(source, target, opts.Repetitions, g.Catalyst, p))
		}
	}
	_ = conn.WriteJSON(gin.H{
		"type":         "result",
		"catalystSize": sol.CatalystSize,
		"pathLength":   sol.PathLength,
		"paths":        lines,
	})
}
