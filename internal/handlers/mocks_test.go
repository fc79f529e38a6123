package handlers

import (
	"context"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

// MockTeamStatsService
type MockTeamStatsService struct {
	ListTeamsFunc    func(ctx context.Context) ([]models.Team, error)
	GetTeamStatsFunc func(ctx context.Context, team string, filter models.TeamStatsFilter) (*models.TeamStatsResponse, error)
}

func (m *MockTeamStatsService) ListTeams(ctx context.Context) ([]models.Team, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx)
	}
	return nil, nil
}

func (m *MockTeamStatsService) GetTeamStats(ctx context.Context, team string, filter models.TeamStatsFilter) (*models.TeamStatsResponse, error) {
	if m.GetTeamStatsFunc != nil {
		return m.GetTeamStatsFunc(ctx, team, filter)
	}
	return &models.TeamStatsResponse{}, nil
}

// MockPlayerStatsService
type MockPlayerStatsService struct {
	GetPlayerStatsFunc func(ctx context.Context, playerName string, includeGameLog bool) (*models.PlayerStatsResponse, error)
	ResolvePlayerFunc  func(ctx context.Context, name string) ([]models.PlayerMatch, error)
}

func (m *MockPlayerStatsService) GetPlayerStats(ctx context.Context, playerName string, includeGameLog bool) (*models.PlayerStatsResponse, error) {
	if m.GetPlayerStatsFunc != nil {
		return m.GetPlayerStatsFunc(ctx, playerName, includeGameLog)
	}
	return &models.PlayerStatsResponse{PlayerName: playerName}, nil
}

func (m *MockPlayerStatsService) ResolvePlayer(ctx context.Context, name string) ([]models.PlayerMatch, error) {
	if m.ResolvePlayerFunc != nil {
		return m.ResolvePlayerFunc(ctx, name)
	}
	return nil, nil
}

// MockScheduleService
type MockScheduleService struct {
	ListScheduleFunc  func(ctx context.Context, filter models.ScheduleFilter) ([]models.Game, error)
	GetGameReportFunc func(ctx context.Context, gameID string) (*models.GameReport, error)
}

func (m *MockScheduleService) ListSchedule(ctx context.Context, filter models.ScheduleFilter) ([]models.Game, error) {
	if m.ListScheduleFunc != nil {
		return m.ListScheduleFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockScheduleService) GetGameReport(ctx context.Context, gameID string) (*models.GameReport, error) {
	if m.GetGameReportFunc != nil {
		return m.GetGameReportFunc(ctx, gameID)
	}
	return &models.GameReport{}, nil
}

// MockSeasonStatsService
type MockSeasonStatsService struct {
	GetSeasonsFunc           func(ctx context.Context) ([]int, error)
	GetTeamSeasonTableFunc   func(ctx context.Context, season int, gameType string) ([]models.TeamSeasonRow, error)
	GetPlayerSeasonTableFunc func(ctx context.Context, season int, gameType string, minGames int) ([]models.PlayerSeasonRow, error)
	GetLeaderboardFunc       func(ctx context.Context, stat string, season int, perGame bool, limit int) ([]models.LeaderboardEntry, error)
	GetSeasonChampionFunc    func(ctx context.Context, season int) (*models.SeasonChampion, error)
}

func (m *MockSeasonStatsService) GetSeasons(ctx context.Context) ([]int, error) {
	if m.GetSeasonsFunc != nil {
		return m.GetSeasonsFunc(ctx)
	}
	return nil, nil
}

func (m *MockSeasonStatsService) GetTeamSeasonTable(ctx context.Context, season int, gameType string) ([]models.TeamSeasonRow, error) {
	if m.GetTeamSeasonTableFunc != nil {
		return m.GetTeamSeasonTableFunc(ctx, season, gameType)
	}
	return nil, nil
}

func (m *MockSeasonStatsService) GetPlayerSeasonTable(ctx context.Context, season int, gameType string, minGames int) ([]models.PlayerSeasonRow, error) {
	if m.GetPlayerSeasonTableFunc != nil {
		return m.GetPlayerSeasonTableFunc(ctx, season, gameType, minGames)
	}
	return nil, nil
}

func (m *MockSeasonStatsService) GetLeaderboard(ctx context.Context, stat string, season int, perGame bool, limit int) ([]models.LeaderboardEntry, error) {
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc(ctx, stat, season, perGame, limit)
	}
	return nil, nil
}

func (m *MockSeasonStatsService) GetSeasonChampion(ctx context.Context, season int) (*models.SeasonChampion, error) {
	if m.GetSeasonChampionFunc != nil {
		return m.GetSeasonChampionFunc(ctx, season)
	}
	return &models.SeasonChampion{}, nil
}

// MockPredictionService
type MockPredictionService struct {
	GetUpcomingPredictionsFunc func(ctx context.Context) (*models.PredictionSet, error)
	GetGamePredictionFunc      func(ctx context.Context, gameID string) (*models.GamePrediction, error)
}

func (m *MockPredictionService) GetUpcomingPredictions(ctx context.Context) (*models.PredictionSet, error) {
	if m.GetUpcomingPredictionsFunc != nil {
		return m.GetUpcomingPredictionsFunc(ctx)
	}
	return &models.PredictionSet{}, nil
}

func (m *MockPredictionService) GetGamePrediction(ctx context.Context, gameID string) (*models.GamePrediction, error) {
	if m.GetGamePredictionFunc != nil {
		return m.GetGamePredictionFunc(ctx, gameID)
	}
	return &models.GamePrediction{}, nil
}

// MockIngestQueue
type MockIngestQueue struct {
	Enqueued []*models.RawBoxscoreLine
	Full     bool
}

func (m *MockIngestQueue) Enqueue(line *models.RawBoxscoreLine) bool {
	if m.Full {
		return false
	}
	m.Enqueued = append(m.Enqueued, line)
	return true
}

func (m *MockIngestQueue) QueueDepth() int {
	return len(m.Enqueued)
}
