// Package audit keeps a local sqlite log of notable bot activity: monitor
// cycle outcomes and admin mutations. The log is advisory; a failed write is
// reported and dropped, never propagated to the user flow.
package audit

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql
var schema string

// event kinds recorded by the bot and the monitor
const (
	KindAlertSent       = "alert_sent"
	KindAlertSendFailed = "alert_send_failed"
	KindFetchFailed     = "fetch_failed"
	KindProductUpdate   = "product_update"
	KindOrderStatus     = "order_status"
	KindSettingChange   = "setting_change"
	KindBulkUpdate      = "bulk_update"
)

// Event is a single audit record
type Event struct {
	ID        int64     `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Actor     string    `db:"actor" json:"actor"`
	Kind      string    `db:"kind" json:"kind"`
	Detail    string    `db:"detail" json:"detail"`
}

// Log is the sqlite-backed audit trail
type Log struct {
	db *sqlx.DB
}

// Open creates or opens the audit database and initializes its schema
func Open(ctx context.Context, dsn string) (*Log, error) {
	if dsn == "" {
		dsn = "file:audit.db?cache=shared&mode=rwc"
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("init audit schema: %w", err)
	}
	return &Log{db: db}, nil
}

// Record appends one event
func (l *Log) Record(ctx context.Context, actor, kind, detail string) error {
	_, err := l.db.ExecContext(ctx,
		"INSERT INTO events (created_at, actor, kind, detail) VALUES (?, ?, ?, ?)",
		time.Now().UTC(), actor, kind, detail)
	if err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}

// Recent returns up to limit most recent events, newest first
func (l *Log) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}
	var events []Event
	err := l.db.SelectContext(ctx, &events,
		"SELECT id, created_at, actor, kind, detail FROM events ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("get recent audit events: %w", err)
	}
	return events, nil
}

// Close closes the underlying database
func (l *Log) Close() error {
	return l.db.Close()
}
