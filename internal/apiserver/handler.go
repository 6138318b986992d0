package apiserver

import (
	"net/http/pprof"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arcosphere-go/catalyst/internal/obslog"
	"github.com/arcosphere-go/catalyst/internal/resultcache"
	"github.com/arcosphere-go/catalyst/recipe"
)

// APIHandler holds the dependencies every route needs, mirroring the
// reference forensics engine's APIHandler: a struct of collaborators,
// constructed once and closed over by every handler method.
type APIHandler struct {
	recipes recipe.Set
	cache   *resultcache.Cache
	logger  *obslog.Logger
}

// NewHandler builds an APIHandler. cache may be nil — the handler runs
// uncached, logging nothing at startup about it; the caller already
// logged whether the optional cache connected.
func NewHandler(recipes recipe.Set, cache *resultcache.Cache, logger *obslog.Logger) *APIHandler {
	return &APIHandler{recipes: recipes, cache: cache, logger: logger}
}

// SetupRouter wires every route onto a fresh *gin.Engine.
func SetupRouter(h *APIHandler) *gin.Engine {
	r := gin.Default()
	r.Use(requestID())

	v1 := r.Group("/v1")
	{
		v1.GET("/version", h.handleVersion)
		v1.POST("/solve", h.handleSolve)
		v1.GET("/solve/stream", h.handleSolveStream)
		v1.POST("/verify", h.handleVerify)
		v1.POST("/schedule", h.handleSchedule)
	}

	debug := r.Group("/debug/pprof")
	{
		debug.GET("/", gin.WrapF(pprof.Index))
		debug.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		debug.GET("/profile", gin.WrapF(pprof.Profile))
		debug.GET("/symbol", gin.WrapF(pprof.Symbol))
		debug.GET("/trace", gin.WrapF(pprof.Trace))
		for _, name := range []string{"heap", "goroutine", "threadcreate", "block", "mutex", "allocs"} {
			debug.GET("/"+name, gin.WrapH(pprof.Handler(name)))
		}
	}

	return r
}

// requestID stamps every request with an X-Request-Id header, generated
// with google/uuid unless the caller already supplied one — the same
// correlation-id convention the solver's cache keys are meant to pair
// with in logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// wantsCBOR reports whether the client asked for the binary codec.
func wantsCBOR(c *gin.Context) bool {
	return c.GetHeader("Accept") == "application/cbor"
}
