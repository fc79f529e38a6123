package logic

import (
	"context"
	"reflect"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// mockConn implements driver.Conn through embedding; only overridden methods
// are callable from tests.
type mockConn struct {
	driver.Conn
	queryRowFunc func(ctx context.Context, query string, args ...interface{}) driver.Row
	queryFunc    func(ctx context.Context, query string, args ...interface{}) (driver.Rows, error)
}

func (m *mockConn) QueryRow(ctx context.Context, query string, args ...interface{}) driver.Row {
	if m.queryRowFunc != nil {
		return m.queryRowFunc(ctx, query, args...)
	}
	return &mockRow{}
}

func (m *mockConn) Query(ctx context.Context, query string, args ...interface{}) (driver.Rows, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, query, args...)
	}
	return &mockRows{}, nil
}

// mockRow scans vals positionally into the destinations.
type mockRow struct {
	driver.Row
	vals []interface{}
}

func (m *mockRow) Scan(dest ...interface{}) error {
	for i := range dest {
		if i < len(m.vals) {
			assign(dest[i], m.vals[i])
		}
	}
	return nil
}

func (m *mockRow) Err() error { return nil }

// mockRows yields no rows, enough for sections a test isn't exercising.
type mockRows struct {
	driver.Rows
}

func (m *mockRows) Next() bool   { return false }
func (m *mockRows) Close() error { return nil }
func (m *mockRows) Err() error   { return nil }

func assign(dest, val interface{}) {
	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(val))
}
