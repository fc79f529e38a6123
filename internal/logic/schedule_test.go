package logic

import (
	"context"
	"strings"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

func TestFetchBoxscoresOrdering(t *testing.T) {
	var gotQuery string
	conn := &mockConn{
		queryFunc: func(ctx context.Context, query string, args ...interface{}) (driver.Rows, error) {
			gotQuery = query
			return &mockRows{}, nil
		},
	}
	s := &scheduleService{ch: conn}

	if _, err := s.fetchBoxscores(context.Background(), "202403140LAL"); err != nil {
		t.Fatalf("fetchBoxscores: %v", err)
	}

	// Starters lead, then points decide; DNP rows sink via played
	if !strings.Contains(gotQuery, "ORDER BY team, team_total, starter DESC, played DESC, pts DESC") {
		t.Errorf("unexpected ordering in query: %s", gotQuery)
	}
}
