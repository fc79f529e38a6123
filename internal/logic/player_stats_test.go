package logic

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// brokenPg fails every query, simulating a Postgres outage.
type brokenPg struct{}

func (brokenPg) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("connection refused")
}

func (brokenPg) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (brokenPg) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("connection refused")
}

func TestGetPlayerStats_MilestoneOutageDegrades(t *testing.T) {
	conn := &mockConn{
		queryRowFunc: func(ctx context.Context, query string, args ...interface{}) driver.Row {
			if strings.Contains(query, "argMax") {
				return &mockRow{}
			}
			return &mockRow{vals: []interface{}{uint64(82)}}
		},
	}

	core, logs := observer.New(zap.WarnLevel)
	svc := NewPlayerStatsService(conn, brokenPg{}, zap.New(core))

	resp, err := svc.GetPlayerStats(context.Background(), "LeBron James", false)
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if resp.Milestones != nil {
		t.Errorf("milestones = %v, want nil when Postgres is down", resp.Milestones)
	}
	if resp.Totals.Games != 82 {
		t.Errorf("games = %d, want 82", resp.Totals.Games)
	}

	entries := logs.FilterMessage("Failed to load milestones").All()
	if len(entries) != 1 {
		t.Fatalf("warn entries = %d, want 1", len(entries))
	}
	if entries[0].ContextMap()["player"] != "LeBron James" {
		t.Errorf("warn context = %v", entries[0].ContextMap())
	}
}
