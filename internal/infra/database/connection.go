package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewDBConnection opens the pool and pings it before returning.
func NewDBConnection(ctx context.Context, connString string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS leads (
	id           TEXT PRIMARY KEY,
	student_name TEXT NOT NULL,
	father_name  TEXT NOT NULL,
	city         TEXT NOT NULL,
	state        TEXT NOT NULL,
	phone        TEXT NOT NULL,
	email        TEXT NOT NULL,
	class        TEXT NOT NULL,
	message      TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL DEFAULT 'New',
	date         TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS leads_date_idx ON leads (date);
CREATE INDEX IF NOT EXISTS leads_status_idx ON leads (status);

CREATE TABLE IF NOT EXISTS news (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	slug       TEXT NOT NULL UNIQUE,
	type       TEXT NOT NULL,
	summary    TEXT NOT NULL DEFAULT '',
	content    TEXT NOT NULL DEFAULT '',
	image_url  TEXT NOT NULL DEFAULT '',
	event_date TIMESTAMPTZ,
	published  BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS result_sessions (
	id          TEXT PRIMARY KEY,
	label       TEXT NOT NULL,
	slug        TEXT NOT NULL UNIQUE,
	year        INTEGER NOT NULL DEFAULT 0,
	description TEXT NOT NULL DEFAULT '',
	images      JSONB NOT NULL DEFAULT '[]',
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the tables when they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
