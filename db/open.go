// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"

	"github.com/danielhkuo/enquetes/cliparse"
)

const defaultTimeout = 3 * time.Second

// Pool settings
const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	maxConnLifetime = 2 * time.Hour
	maxConnIdleTime = 5 * time.Minute
)

// Open connects to the database with the configured driver and verifies
// the connection before returning.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	conn, err := sql.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	Configure(conn)

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// Configure applies the pool limits to conn
func Configure(conn *sql.DB) {
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(maxConnLifetime)
	conn.SetConnMaxIdleTime(maxConnIdleTime)
}
