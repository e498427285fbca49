package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vaibhavuttam8/jam-rating/internal/adapters/coverart"
	"github.com/vaibhavuttam8/jam-rating/internal/adapters/httpclient"
	"github.com/vaibhavuttam8/jam-rating/internal/adapters/musicbrainz"
	"github.com/vaibhavuttam8/jam-rating/internal/adapters/redis"
	"github.com/vaibhavuttam8/jam-rating/internal/adapters/rest"
	"github.com/vaibhavuttam8/jam-rating/internal/adapters/sqlite"
	"github.com/vaibhavuttam8/jam-rating/internal/config"
	"github.com/vaibhavuttam8/jam-rating/internal/core/ports"
	"github.com/vaibhavuttam8/jam-rating/internal/core/services"
	"github.com/vaibhavuttam8/jam-rating/internal/worker"
)

func main() {
	// 1. Configuration
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Driven adapters
	var repo ports.ArtCacheRepository
	repoCloser := func() error { return nil }

	switch cfg.StorageDriver {
	case config.DriverSQLite:
		dbAdapter, err := sqlite.NewAdapter(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize database: %v", err)
		}
		repo = dbAdapter
		repoCloser = dbAdapter.Close
	case config.DriverRedis:
		redisAdapter, err := redis.NewAdapter(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("FATAL: Failed to connect to redis: %v", err)
		}
		repo = redisAdapter
		repoCloser = redisAdapter.Close
	case config.DriverMemory:
		log.Println("WARN: art cache is not persisted (STORAGE_DRIVER=memory)")
	default:
		log.Fatalf("Unknown storage driver: %s", cfg.StorageDriver)
	}
	defer repoCloser()

	transport := func(name string) *httpclient.Client {
		return httpclient.New(
			httpclient.WithName(name),
			httpclient.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			httpclient.WithUserAgent(cfg.UserAgent),
			httpclient.WithRetries(cfg.MaxRetries, cfg.RetryBackoff),
			httpclient.WithRateLimit(cfg.RatePerSecond, 1),
		)
	}
	searcher := musicbrainz.NewClient(transport("musicbrainz adapter"), cfg.MusicBrainzBaseURL)
	art := coverart.NewClient(transport("coverart adapter"), cfg.CoverArtBaseURL)

	// 3. Core services
	cache := services.NewArtCache(ctx, repo)
	catalog := services.NewCatalogService(searcher, art, cache, services.WithDefaultPageSize(cfg.SearchPageSize))
	store := services.NewPlaylistStore()

	pool := worker.NewPool(catalog, cfg.ArtWorkers, cfg.ArtQueueSize)
	catalog.UseDispatcher(pool)
	pool.Start(cfg.ArtWorkers)
	defer pool.Stop()

	// 4. Driving adapter
	handler := rest.NewHandler(store, catalog)

	log.Printf("jam-rating UI boundary listening on http://%s (art cache: %s, %d entries)", cfg.Addr, cfg.StorageDriver, cache.Len())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Printf("ERROR: server failed: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
