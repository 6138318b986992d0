// Command arcosphered serves solve, verify and schedule over HTTP. It
// never implements solver semantics itself — it is a thin bootstrap
// around internal/apiserver, the way cmd/engine/main.go in the
// reference forensics engine only wires dependencies and starts
// api.SetupRouter.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	_ "go.uber.org/automaxprocs"

	"github.com/arcosphere-go/catalyst/internal/apiserver"
	"github.com/arcosphere-go/catalyst/internal/obslog"
	"github.com/arcosphere-go/catalyst/internal/resultcache"
	"github.com/arcosphere-go/catalyst/recipe"
)

func main() {
	log.Println("Starting arcosphered...")

	logger := obslog.New(os.Stderr, zerolog.InfoLevel)

	var cache *resultcache.Cache
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		c, err := resultcache.Connect(ctx, dbURL)
		cancel()
		if err != nil {
			log.Printf("Warning: failed to connect result cache, continuing without it: %v", err)
		} else {
			defer c.Close()
			if err := c.InitSchema(context.Background()); err != nil {
				log.Printf("Warning: result cache schema init failed: %v", err)
			} else {
				cache = c
			}
		}
	} else {
		log.Println("DATABASE_URL not set, running without a result cache")
	}

	handler := apiserver.NewHandler(recipe.DefaultRecipes(), cache, logger)
	router := apiserver.SetupRouter(handler)

	addr := ":" + getEnvOrDefault("PORT", "8089")
	log.Printf("arcosphered listening on %s", addr)

	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("arcosphered: listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("arcosphered shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("arcosphered: shutdown: %v", err)
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
