package logic

import (
	"strings"
	"testing"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

func TestBuildStatsQuery(t *testing.T) {
	tests := []struct {
		name         string
		req          models.StatsQueryRequest
		wantContains []string
		wantArgs     int
		wantErr      bool
	}{
		{
			name: "player points per game",
			req: models.StatsQueryRequest{
				Stats:   []string{"pts", "trb"},
				GroupBy: "player",
				Season:  2024,
				PerGame: true,
				OrderBy: "pts",
				Desc:    true,
			},
			wantContains: []string{
				"toString(player_name) as label",
				"team_total = 0",
				"season = ?",
				"ORDER BY pts DESC",
			},
			wantArgs: 1,
		},
		{
			name: "team grouping uses total rows",
			req: models.StatsQueryRequest{
				Stats:   []string{"wins", "pts"},
				GroupBy: "team",
			},
			wantContains: []string{"team_total = 1", "GROUP BY team"},
		},
		{
			name: "invalid group_by",
			req: models.StatsQueryRequest{
				Stats:   []string{"pts"},
				GroupBy: "player_name; DROP TABLE boxscore_lines",
			},
			wantErr: true,
		},
		{
			name: "invalid stat",
			req: models.StatsQueryRequest{
				Stats:   []string{"pts)--"},
				GroupBy: "player",
			},
			wantErr: true,
		},
		{
			name: "order_by must be a requested stat",
			req: models.StatsQueryRequest{
				Stats:   []string{"pts"},
				GroupBy: "player",
				OrderBy: "trb",
			},
			wantErr: true,
		},
		{
			name: "min_games becomes having arg",
			req: models.StatsQueryRequest{
				Stats:    []string{"pts"},
				GroupBy:  "player",
				Season:   2023,
				MinGames: 20,
			},
			wantContains: []string{"HAVING games >= ?"},
			wantArgs:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, args, err := BuildStatsQuery(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("BuildStatsQuery() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("query missing %q:\n%s", want, got)
				}
			}
			if tt.wantArgs > 0 && len(args) != tt.wantArgs {
				t.Errorf("args = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestBuildStatsQuery_LimitClamped(t *testing.T) {
	req := models.StatsQueryRequest{
		Stats:   []string{"pts"},
		GroupBy: "player",
		Limit:   99999,
	}
	got, _, err := BuildStatsQuery(req)
	if err != nil {
		t.Fatalf("BuildStatsQuery() error = %v", err)
	}
	if !strings.Contains(got, "LIMIT 100") {
		t.Errorf("oversized limit not clamped:\n%s", got)
	}
}
