package logic

import (
	"context"
	"time"

	"github.com/HTilki/NBAStatsApp/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// TeamStatsService serves the team dashboard.
type TeamStatsService interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeamStats(ctx context.Context, team string, filter models.TeamStatsFilter) (*models.TeamStatsResponse, error)
}

// PlayerStatsService serves the player dashboard.
type PlayerStatsService interface {
	GetPlayerStats(ctx context.Context, playerName string, includeGameLog bool) (*models.PlayerStatsResponse, error)
	ResolvePlayer(ctx context.Context, name string) ([]models.PlayerMatch, error)
}

// ScheduleService serves the schedule and game detail pages.
type ScheduleService interface {
	ListSchedule(ctx context.Context, filter models.ScheduleFilter) ([]models.Game, error)
	GetGameReport(ctx context.Context, gameID string) (*models.GameReport, error)
}

// SeasonStatsService serves season-wide comparison tables and leaderboards.
type SeasonStatsService interface {
	GetSeasons(ctx context.Context) ([]int, error)
	GetTeamSeasonTable(ctx context.Context, season int, gameType string) ([]models.TeamSeasonRow, error)
	GetPlayerSeasonTable(ctx context.Context, season int, gameType string, minGames int) ([]models.PlayerSeasonRow, error)
	GetLeaderboard(ctx context.Context, stat string, season int, perGame bool, limit int) ([]models.LeaderboardEntry, error)
	GetSeasonChampion(ctx context.Context, season int) (*models.SeasonChampion, error)
}

// PredictionService forecasts upcoming games.
type PredictionService interface {
	GetUpcomingPredictions(ctx context.Context) (*models.PredictionSet, error)
	GetGamePrediction(ctx context.Context, gameID string) (*models.GamePrediction, error)
}
