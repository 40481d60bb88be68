// Command atlas-server exposes the article analysis pipeline as a JSON
// API for dashboards.
//
// Endpoints:
//
//	POST /api/analyze   body: {"text":"..."} or {"url":"..."}
//	GET  /api/config
//	GET  /__health
//	GET  /__gtg
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"

	"github.com/GannaSameh/atlas/pkg/atlas"
	"github.com/GannaSameh/atlas/pkg/atlas/config"
	"github.com/GannaSameh/atlas/pkg/atlas/source"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	cfg := config.LoadServer()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("invalid LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	opts, err := cfg.Loader().Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	engine, err := atlas.New(opts)
	if err != nil {
		log.Fatalf("build pipeline: %v", err)
	}

	registry := metrics.NewRegistry()
	if cfg.LogMetrics {
		go metrics.Log(registry, time.Minute, log.StandardLogger())
	}

	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	handlers := &atlasHandlers{
		engine:  engine,
		fetcher: source.NewFetcher(timeout),
		logger:  log.StandardLogger(),
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router(handlers, registry, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("atlas-server will listen on port: %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Unable to start server: %v", err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
	log.Println("Application closing")
}
