package main

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/rogerio-castellano/logistics-dashboard/docs"
	"github.com/rogerio-castellano/logistics-dashboard/internal/alert"
	"github.com/rogerio-castellano/logistics-dashboard/internal/config"
	"github.com/rogerio-castellano/logistics-dashboard/internal/db"
	apihttp "github.com/rogerio-castellano/logistics-dashboard/internal/http"
	"github.com/rogerio-castellano/logistics-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/logistics-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/logistics-dashboard/internal/logger"
	"github.com/rogerio-castellano/logistics-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/logistics-dashboard/internal/repo"
	"github.com/rogerio-castellano/logistics-dashboard/internal/search"
)

// @title Logistics Dashboard API
// @version 1.0
// @description REST API backing the logistics inventory dashboard: suppliers, items, shipments, aggregated statistics and chart rendering.
// @host localhost:8080
// @BasePath /
func main() {
	zl := logger.Must(logger.New())
	defer zl.Sync()
	log := zl.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	var cache *redissvc.RedisService
	if cfg.Redis.Addr != "" {
		ctx := context.Background()
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalw("could not connect to redis", "addr", cfg.Redis.Addr, "error", err)
		}
		defer rdb.Close()
		cache = redissvc.NewRedisService(rdb, ctx)
	}

	database, err := db.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatalw("could not connect to database", "error", err)
	}
	defer database.Close()

	handlers.SetSupplierRepo(repo.NewPostgresSupplierRepository(database))
	handlers.SetItemRepo(repo.NewPostgresItemRepository(database))
	handlers.SetShipmentRepo(repo.NewPostgresShipmentRepository(database))
	handlers.SetCache(cache, cfg.Redis.SummaryTTL)
	handlers.SetLogger(logger.Named(zl, "http").Sugar())

	if cfg.RemoteSearch.URL != "" {
		handlers.SetRemoteSearch(search.NewRemoteClient(cfg.RemoteSearch.URL))
	}

	alert.Configure(cfg.Alert, cache, logger.Named(zl, "alert").Sugar())
	go alert.StartDailySummaryLoop(24 * time.Hour)

	registry := rl.NewRegistry()
	go registry.StartCleanupLoop(time.Minute)

	r := apihttp.NewRouter(registry, log)
	log.Infow("server listening", "addr", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
