package handlers

import (
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/HTilki/NBAStatsApp/internal/logic"
	"github.com/HTilki/NBAStatsApp/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// IngestQueue defines the interface for the box score ingestion worker pool
type IngestQueue interface {
	Enqueue(line *models.RawBoxscoreLine) bool
	QueueDepth() int
}

type Config struct {
	WorkerPool IngestQueue
	Postgres   *pgxpool.Pool
	ClickHouse driver.Conn
	Redis      *redis.Client
	Logger     *zap.Logger
	// Services
	TeamStats   logic.TeamStatsService
	PlayerStats logic.PlayerStatsService
	Schedule    logic.ScheduleService
	SeasonStats logic.SeasonStatsService
	Prediction  logic.PredictionService
}

type Handler struct {
	pool        IngestQueue
	pg          *pgxpool.Pool
	ch          driver.Conn
	redis       *redis.Client
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	teamStats   logic.TeamStatsService
	playerStats logic.PlayerStatsService
	schedule    logic.ScheduleService
	seasonStats logic.SeasonStatsService
	prediction  logic.PredictionService
}

func New(cfg Config) *Handler {
	return &Handler{
		pool:        cfg.WorkerPool,
		pg:          cfg.Postgres,
		ch:          cfg.ClickHouse,
		redis:       cfg.Redis,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
		teamStats:   cfg.TeamStats,
		playerStats: cfg.PlayerStats,
		schedule:    cfg.Schedule,
		seasonStats: cfg.SeasonStats,
		prediction:  cfg.Prediction,
	}
}
