package worker

import (
	"context"
	"sync/atomic"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// MockClickHouseConn implements driver.Conn for testing. Appended and Sent
// are shared across every batch the conn hands out so tests can count lines
// across all workers.
type MockClickHouseConn struct {
	driver.Conn
	Appended atomic.Int64
	Sent     atomic.Int64
}

func (m *MockClickHouseConn) PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error) {
	return &MockBatch{conn: m}, nil
}

type MockBatch struct {
	conn *MockClickHouseConn
	rows int
	sent bool
}

func (m *MockBatch) IsSent() bool {
	return m.sent
}

func (m *MockBatch) Rows() int {
	return m.rows
}

func (m *MockBatch) Append(v ...interface{}) error {
	m.rows++
	m.conn.Appended.Add(1)
	return nil
}

func (m *MockBatch) AppendStruct(v interface{}) error {
	m.rows++
	m.conn.Appended.Add(1)
	return nil
}

func (m *MockBatch) Column(int) driver.BatchColumn {
	return nil
}

func (m *MockBatch) Send() error {
	m.sent = true
	m.conn.Sent.Add(int64(m.rows))
	return nil
}

func (m *MockBatch) Flush() error {
	return nil
}

func (m *MockBatch) Abort() error {
	return nil
}
