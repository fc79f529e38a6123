package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/HTilki/NBAStatsApp/docs"
	"github.com/HTilki/NBAStatsApp/internal/config"
	"github.com/HTilki/NBAStatsApp/internal/handlers"
	"github.com/HTilki/NBAStatsApp/internal/logic"
	"github.com/HTilki/NBAStatsApp/internal/worker"
)

// @title NBA Stats API
// @version 1.0
// @description League statistics API: team and player analytics, schedules, box scores and win probability predictions.
// @BasePath /api/v1
// @securityDefinitions.apikey IngestToken
// @in header
// @name X-Ingest-Token
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Postgres: teams, schedule, milestones, ingest sources
	pg, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		sugar.Fatalw("Failed to connect to Postgres", "error", err)
	}
	defer pg.Close()
	if err := pg.Ping(ctx); err != nil {
		sugar.Fatalw("Postgres ping failed", "error", err)
	}

	// ClickHouse: box score lines, all aggregation queries
	chOpts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
	if err != nil {
		sugar.Fatalw("Invalid ClickHouse URL", "error", err)
	}
	ch, err := clickhouse.Open(chOpts)
	if err != nil {
		sugar.Fatalw("Failed to connect to ClickHouse", "error", err)
	}
	defer ch.Close()
	if err := ch.Ping(ctx); err != nil {
		sugar.Fatalw("ClickHouse ping failed", "error", err)
	}

	// Redis: response caches, career counters, milestone sets
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("Invalid Redis URL", "error", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		sugar.Fatalw("Redis ping failed", "error", err)
	}

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount:   cfg.WorkerCount,
		QueueSize:     cfg.QueueSize,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		ClickHouse:    ch,
		Postgres:      pg,
		Redis:         rdb,
		Logger:        logger,
	})
	// The pool gets its own context so in-flight batches can drain after the
	// shutdown signal fires.
	pool.Start(context.Background())

	h := handlers.New(handlers.Config{
		WorkerPool:  pool,
		Postgres:    pg,
		ClickHouse:  ch,
		Redis:       rdb,
		Logger:      logger,
		TeamStats:   logic.NewTeamStatsService(ch, pg, rdb, cfg.TeamCacheTTL),
		PlayerStats: logic.NewPlayerStatsService(ch, pg, logger),
		Schedule:    logic.NewScheduleService(pg, ch),
		SeasonStats: logic.NewSeasonStatsService(ch, pg),
		Prediction:  logic.NewPredictionService(ch, pg, rdb, cfg.PredictionCacheTTL),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Routes(cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("Starting server", "port", cfg.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutdown signal received, draining")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown failed", "error", err)
	}
	pool.Stop()
	sugar.Info("Shutdown complete")
}
