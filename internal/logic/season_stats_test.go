package logic

import (
	"context"
	"strings"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

func TestGetLeaderboardStatExpressions(t *testing.T) {
	var gotQuery string
	conn := &mockConn{
		queryFunc: func(ctx context.Context, query string, args ...interface{}) (driver.Rows, error) {
			gotQuery = query
			return &mockRows{}, nil
		},
	}
	s := &seasonStatsService{ch: conn}

	if _, err := s.GetLeaderboard(context.Background(), "pts", 2024, false, 10); err != nil {
		t.Fatalf("pts leaderboard: %v", err)
	}
	if !strings.Contains(gotQuery, "sum(pts) as total") {
		t.Errorf("pts query = %s", gotQuery)
	}

	// Minutes come back in whole minutes, not raw seconds
	if _, err := s.GetLeaderboard(context.Background(), "minutes", 2024, false, 10); err != nil {
		t.Fatalf("minutes leaderboard: %v", err)
	}
	if !strings.Contains(gotQuery, "intDiv(sum(seconds_played), 60) as total") {
		t.Errorf("minutes query = %s", gotQuery)
	}

	if _, err := s.GetLeaderboard(context.Background(), "salary", 2024, false, 10); err == nil {
		t.Error("unknown stat should be rejected")
	}
}
