package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

func TestGetTeamStats(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantTeam     string
		wantType     string
		wantOpponent string
		wantFrom     string
	}{
		{
			name:       "valid request",
			path:       "/api/v1/teams/lal/stats?season=2024",
			wantStatus: http.StatusOK,
			wantTeam:   "LAL",
			wantType:   "regular season",
		},
		{
			name:       "explicit game type lowercased",
			path:       "/api/v1/teams/BOS/stats?season=2024&game_type=Playoffs",
			wantStatus: http.StatusOK,
			wantTeam:   "BOS",
			wantType:   "playoffs",
		},
		{
			name:         "opponent and date range",
			path:         "/api/v1/teams/LAL/stats?season=2024&opponent=bos&from=2024-01-01&to=2024-04-14",
			wantStatus:   http.StatusOK,
			wantTeam:     "LAL",
			wantType:     "regular season",
			wantOpponent: "BOS",
			wantFrom:     "2024-01-01",
		},
		{
			name:       "bad abbreviation",
			path:       "/api/v1/teams/LAKERS/stats?season=2024",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad opponent abbreviation",
			path:       "/api/v1/teams/LAL/stats?season=2024&opponent=CELTICS",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad from date",
			path:       "/api/v1/teams/LAL/stats?season=2024&from=January",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing season",
			path:       "/api/v1/teams/LAL/stats",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "season out of range",
			path:       "/api/v1/teams/LAL/stats?season=1890",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTeam string
			var gotFilter models.TeamStatsFilter
			teamStats := &MockTeamStatsService{
				GetTeamStatsFunc: func(ctx context.Context, team string, filter models.TeamStatsFilter) (*models.TeamStatsResponse, error) {
					gotTeam, gotFilter = team, filter
					return &models.TeamStatsResponse{}, nil
				},
			}
			h := newTestHandler(Config{TeamStats: teamStats})

			r := chi.NewRouter()
			r.Get("/api/v1/teams/{abbr}/stats", h.GetTeamStats)

			req := httptest.NewRequest("GET", tt.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			if gotTeam != tt.wantTeam {
				t.Errorf("team = %q, want %q", gotTeam, tt.wantTeam)
			}
			if gotFilter.GameType != tt.wantType {
				t.Errorf("game_type = %q, want %q", gotFilter.GameType, tt.wantType)
			}
			if gotFilter.Opponent != tt.wantOpponent {
				t.Errorf("opponent = %q, want %q", gotFilter.Opponent, tt.wantOpponent)
			}
			if tt.wantFrom != "" {
				if gotFilter.From == nil || gotFilter.From.Format("2006-01-02") != tt.wantFrom {
					t.Errorf("from = %v, want %s", gotFilter.From, tt.wantFrom)
				}
			}
		})
	}
}

func TestListTeams(t *testing.T) {
	teamStats := &MockTeamStatsService{
		ListTeamsFunc: func(ctx context.Context) ([]models.Team, error) {
			return []models.Team{
				{Name: "Boston Celtics", Abbreviation: "BOS", Conference: "East", Division: "Atlantic"},
				{Name: "Los Angeles Lakers", Abbreviation: "LAL", Conference: "West", Division: "Pacific"},
			}, nil
		},
	}
	h := newTestHandler(Config{TeamStats: teamStats})

	req := httptest.NewRequest("GET", "/api/v1/teams", nil)
	rec := httptest.NewRecorder()
	h.ListTeams(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var teams []models.Team
	if err := json.NewDecoder(rec.Body).Decode(&teams); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("teams = %d, want 2", len(teams))
	}
	if teams[1].Abbreviation != "LAL" {
		t.Errorf("second team = %q", teams[1].Abbreviation)
	}
}
