package sqlite

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/domain"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/ports"
	_ "modernc.org/sqlite" // Local SQLite driver
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbURL string) (*SQLiteRepository, error) {
	driverName := "sqlite"
	if strings.Contains(dbURL, "libsql://") || strings.Contains(dbURL, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS engagements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		coupon_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		referer TEXT,
		user_agent TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_engagements_coupon_id ON engagements(coupon_id);
	`
	_, err := db.Exec(query)
	return err
}

func (r *SQLiteRepository) Read(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv_store WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *SQLiteRepository) Write(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv_store (key, value) VALUES (?, ?)
			  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	_, err := r.db.ExecContext(ctx, query, key, value)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE key = ?`
	_, err := r.db.ExecContext(ctx, query, key)
	return err
}

func (r *SQLiteRepository) Record(ctx context.Context, event *domain.EngagementEvent) error {
	query := `INSERT INTO engagements (coupon_id, kind, referer, user_agent, created_at) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, event.CouponID, event.Kind, event.Referer, event.UserAgent, event.CreatedAt.Format("2006-01-02 15:04:05"))
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	event.ID = id
	return nil
}

func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]domain.EngagementEvent, error) {
	query := `SELECT id, coupon_id, kind, referer, user_agent, created_at
			  FROM engagements ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.EngagementEvent
	for rows.Next() {
		var e domain.EngagementEvent
		if err := rows.Scan(&e.ID, &e.CouponID, &e.Kind, &e.Referer, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Ensure interface compliance
var _ ports.KVStore = (*SQLiteRepository)(nil)
var _ ports.EngagementLog = (*SQLiteRepository)(nil)
