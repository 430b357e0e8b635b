// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/danielhkuo/enquetes/cliparse"
	"github.com/danielhkuo/enquetes/models"
)

// Store is the data access surface used by the HTTP handlers
type Store interface {
	Ping(ctx context.Context) error
	PollExists(ctx context.Context, pollID int64) (bool, error)

	CreatePoll(ctx context.Context, req models.CreatePollRequest) (int64, error)
	ListActivePolls(ctx context.Context) ([]models.PollSummary, error)
	GetPollDetail(ctx context.Context, pollID int64) (*models.PollDetail, error)
	DeletePoll(ctx context.Context, pollID int64) error

	Vote(ctx context.Context, pollID, optionID, userID int64) error
	GetResults(ctx context.Context, pollID int64) ([]models.OptionResult, error)

	ListOptions(ctx context.Context, pollID int64) ([]models.Option, error)
	AddOption(ctx context.Context, pollID int64, label string) (int64, error)
	DeleteOption(ctx context.Context, pollID, optionID int64) error
}

// Postgres implements Store on a database/sql connection pool
type Postgres struct {
	conn   *sql.DB
	strict bool
}

var _ Store = (*Postgres)(nil)

func New(conn *sql.DB, cfg cliparse.Config) *Postgres {
	return &Postgres{conn: conn, strict: cfg.StrictReferences}
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.conn.PingContext(ctx)
}

// PollExists reports whether a poll row with the given id is present
func (p *Postgres) PollExists(ctx context.Context, pollID int64) (bool, error) {
	ok, err := exists(ctx, p.conn, `SELECT 1 FROM sys_enquete WHERE enq_co_enquete = $1`, pollID)
	if err != nil {
		return false, errors.Wrapf(err, "check poll %d", pollID)
	}
	return ok, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func exists(ctx context.Context, q querier, query string, args ...interface{}) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
