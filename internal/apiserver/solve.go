package apiserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcosphere-go/catalyst/internal/cachekey"
	"github.com/arcosphere-go/catalyst/internal/wire"
	"github.com/arcosphere-go/catalyst/pathfmt"
	"github.com/arcosphere-go/catalyst/solve"
	"github.com/arcosphere-go/catalyst/token"
)

// solveRequest is the JSON body for POST /v1/solve. The four cap fields
// are pointers so an omitted key and an explicit 0 are distinguishable:
// omitted falls back to solve.DefaultOptions(), explicit 0 is passed
// straight through to solve.Solve, the same way cmd/arcospherectl's
// flag.Int never substitutes a default for a flag the caller set to 0.
type solveRequest struct {
	Source          string `json:"source"`
	Target          string `json:"target"`
	Repetitions     *int   `json:"repetitions"`
	MaxCatalystSize *int   `json:"maxCatalystSize"`
	MaxDepth        *int   `json:"maxDepth"`
	MaxNodes        *int   `json:"maxNodes"`
	Parallel        bool   `json:"parallel"`
}

// handleSolve runs solve.Solve for one request. On a cache hit (the
// optional resultcache is configured) it skips the search entirely.
func (h *APIHandler) handleSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source, err := token.Parse(req.Source)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source: " + err.Error()})
		return
	}
	target, err := token.Parse(req.Target)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target: " + err.Error()})
		return
	}

	opts := defaultedSolveOptions(req)
	ctx := c.Request.Context()

	var key cachekey.Key
	if h.cache != nil {
		key = cachekey.ForSolve(source, target, h.recipes, opts.Repetitions)
		if sol, ok, cacheErr := h.cache.Get(ctx, key); cacheErr == nil && ok {
			h.respondSolution(c, req, opts, sol, true)
			return
		}
	}

	sol, err := solve.Solve(source, target, h.recipes,
		solve.WithMaxCatalystSize(opts.MaxCatalystSize),
		solve.WithMaxDepth(opts.MaxDepth),
		solve.WithMaxNodes(opts.MaxNodes),
		solve.WithRepetitions(opts.Repetitions),
		solve.WithParallel(opts.Parallel),
		solve.WithContext(ctx),
		solve.WithLogger(h.logger),
	)
	if err != nil {
		respondSolveError(c, err)
		return
	}

	if h.cache != nil {
		_ = h.cache.Put(ctx, key, sol)
	}
	h.respondSolution(c, req, opts, sol, false)
}

func (h *APIHandler) respondSolution(c *gin.Context, req solveRequest, opts resolvedOptions, sol *solve.Solution, cached bool) {
	source, _ := token.Parse(req.Source)
	target, _ := token.Parse(req.Target)

	if wantsCBOR(c) {
		b, err := wire.EncodeSolution(sol)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/cbor", b)
		return
	}

	var lines []string
	for _, g := range sol.Groups {
		for _, p := range g.Paths {
			lines = append(lines, pathfmt.FormatPath(source, target, opts.Repetitions, g.Catalyst, p))
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"catalystSize": sol.CatalystSize,
		"pathLength":   sol.PathLength,
		"paths":        lines,
		"cached":       cached,
		"requestId":    c.GetString("request_id"),
	})
}

func respondSolveError(c *gin.Context, err error) {
	var te *solve.TruncatedError
	switch {
	case err == solve.ErrInfeasible:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case err == solve.ErrNoSolution:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err == solve.ErrCancelled:
		c.JSON(http.StatusRequestTimeout, gin.H{"error": err.Error()})
	case errors.As(err, &te):
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error(), "cap": te.Cap})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type resolvedOptions struct {
	Repetitions     int
	MaxCatalystSize int
	MaxDepth        int
	MaxNodes        int
	Parallel        bool
}

// defaultedSolveOptions fills any omitted cap from solve's own defaults.
// A field the client left out of the JSON body (nil pointer) takes the
// default; a field the client set to 0 is passed through unchanged —
// the same distinction cmd/arcospherectl gets for free from flag.Int,
// where an unset flag and an explicit -max-catalyst-size=0 never
// collapse to the same value.
func defaultedSolveOptions(req solveRequest) resolvedOptions {
	d := solve.DefaultOptions()
	o := resolvedOptions{
		Repetitions:     d.Repetitions,
		MaxCatalystSize: d.MaxCatalystSize,
		MaxDepth:        d.MaxDepth,
		MaxNodes:        d.MaxNodes,
		Parallel:        req.Parallel,
	}
	if req.Repetitions != nil {
		o.Repetitions = *req.Repetitions
	}
	if req.MaxCatalystSize != nil {
		o.MaxCatalystSize = *req.MaxCatalystSize
	}
	if req.MaxDepth != nil {
		o.MaxDepth = *req.MaxDepth
	}
	if req.MaxNodes != nil {
		o.MaxNodes = *req.MaxNodes
	}
	return o
}
