package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/HTilki/NBAStatsApp/internal/logic"
	"github.com/HTilki/NBAStatsApp/internal/models"
)

func newTestHandler(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.WorkerPool == nil {
		cfg.WorkerPool = &MockIngestQueue{}
	}
	return New(cfg)
}

func TestGetPlayerStats(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		mockSetup  func(*MockPlayerStatsService)
		wantStatus int
	}{
		{
			name: "known player",
			path: "/api/v1/players/LeBron%20James/stats",
			mockSetup: func(m *MockPlayerStatsService) {
				m.GetPlayerStatsFunc = func(ctx context.Context, name string, includeGameLog bool) (*models.PlayerStatsResponse, error) {
					if name != "LeBron James" {
						t.Errorf("name = %q, want unescaped LeBron James", name)
					}
					return &models.PlayerStatsResponse{
						PlayerName: name,
						Totals:     models.CareerTotals{Games: 1500, PTS: 40000},
					}, nil
				}
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown player",
			path: "/api/v1/players/Nobody/stats",
			mockSetup: func(m *MockPlayerStatsService) {
				m.GetPlayerStatsFunc = func(ctx context.Context, name string, includeGameLog bool) (*models.PlayerStatsResponse, error) {
					return nil, logic.ErrPlayerNotFound
				}
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPlayerStatsService{}
			tt.mockSetup(mockService)

			h := newTestHandler(Config{PlayerStats: mockService})

			r := chi.NewRouter()
			r.Get("/api/v1/players/{name}/stats", h.GetPlayerStats)

			req := httptest.NewRequest("GET", tt.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var resp models.PlayerStatsResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if resp.Totals.PTS != 40000 {
					t.Errorf("PTS = %d, want 40000", resp.Totals.PTS)
				}
			}
		})
	}
}

func TestResolvePlayer_ShortQuery(t *testing.T) {
	h := newTestHandler(Config{PlayerStats: &MockPlayerStatsService{}})

	r := chi.NewRouter()
	r.Get("/api/v1/players/resolve", h.ResolvePlayer)

	req := httptest.NewRequest("GET", "/api/v1/players/resolve?q=a", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestResolvePlayer_EmptyResultIsArray(t *testing.T) {
	h := newTestHandler(Config{PlayerStats: &MockPlayerStatsService{}})

	r := chi.NewRouter()
	r.Get("/api/v1/players/resolve", h.ResolvePlayer)

	req := httptest.NewRequest("GET", "/api/v1/players/resolve?q=zzzz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); body[0] != '[' {
		t.Errorf("empty result should serialize as JSON array, got %s", body)
	}
}
