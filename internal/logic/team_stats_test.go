package logic

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

func TestFillOverview(t *testing.T) {
	conn := &mockConn{
		queryRowFunc: func(ctx context.Context, query string, args ...interface{}) driver.Row {
			if strings.Contains(query, "points_against") {
				return &mockRow{vals: []interface{}{uint64(5500)}}
			}
			return &mockRow{vals: []interface{}{
				uint64(50), uint64(30), uint64(5750),
				uint64(2200), uint64(1300), uint64(400), uint64(250),
				uint64(2100), uint64(4500), uint64(700), uint64(1900), uint64(850), uint64(1100),
			}}
		},
	}
	s := &teamStatsService{ch: conn}

	var out models.TeamOverview
	filter := models.TeamStatsFilter{Season: 2024, GameType: "regular season"}
	if err := s.fillOverview(context.Background(), "LAL", filter, &out); err != nil {
		t.Fatalf("fillOverview: %v", err)
	}

	if out.Losses != 20 {
		t.Errorf("losses = %d, want 20", out.Losses)
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"win_pct", out.WinPct, 0.6},
		{"ppg", out.PPG, 115},
		{"opp_ppg", out.OppPPG, 110},
		{"point_diff", out.PointDiff, 5},
		{"rpg", out.RPG, 44},
		{"apg", out.APG, 26},
		{"spg", out.SPG, 8},
		{"bpg", out.BPG, 5},
		{"fg_pct", out.FGPct, 2100.0 / 4500},
		{"three_pct", out.ThreePct, 700.0 / 1900},
		{"ft_pct", out.FTPct, 850.0 / 1100},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %f, want %f", c.name, c.got, c.want)
		}
	}
}

func TestTeamStatsFilterClauses(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC)
	f := models.TeamStatsFilter{
		Season:   2024,
		GameType: "regular season",
		Opponent: "BOS",
		From:     &from,
		To:       &to,
	}

	clause, args := teamSideClauses(f)
	if clause != " AND opponent = ? AND date >= ? AND date <= ?" {
		t.Errorf("team-side clause = %q", clause)
	}
	if len(args) != 3 || args[0] != "BOS" {
		t.Errorf("team-side args = %v", args)
	}

	oppClause, oppArgs := opponentSideClauses(f)
	if oppClause != " AND team = ? AND date >= ? AND date <= ?" {
		t.Errorf("opponent-side clause = %q", oppClause)
	}
	if len(oppArgs) != 3 || oppArgs[0] != "BOS" {
		t.Errorf("opponent-side args = %v", oppArgs)
	}

	empty, emptyArgs := teamSideClauses(models.TeamStatsFilter{Season: 2024, GameType: "regular season"})
	if empty != "" || len(emptyArgs) != 0 {
		t.Errorf("clause without filters = %q, args %v", empty, emptyArgs)
	}
}

func TestFillLocationWinPct_VsOpponent(t *testing.T) {
	var gotQuery string
	var gotArgs []interface{}
	conn := &mockConn{
		queryRowFunc: func(ctx context.Context, query string, args ...interface{}) driver.Row {
			gotQuery, gotArgs = query, args
			return &mockRow{vals: []interface{}{uint64(2), uint64(2), uint64(2), uint64(1)}}
		},
	}
	s := &teamStatsService{ch: conn}

	var out models.LocationWinPct
	f := models.TeamStatsFilter{Season: 2024, GameType: "regular season", Opponent: "BOS"}
	if err := s.fillLocationWinPct(context.Background(), "LAL", f, &out); err != nil {
		t.Fatalf("fillLocationWinPct: %v", err)
	}

	if !strings.Contains(gotQuery, "AND opponent = ?") {
		t.Errorf("query missing opponent condition: %s", gotQuery)
	}
	if len(gotArgs) != 3 || gotArgs[2] != "BOS" {
		t.Errorf("args = %v, want opponent appended", gotArgs)
	}
	if out.HomeWinPct != 1.0 {
		t.Errorf("home win pct = %f, want 1.0", out.HomeWinPct)
	}
	if out.AwayWinPct != 0.5 {
		t.Errorf("away win pct = %f, want 0.5", out.AwayWinPct)
	}
}
