// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/danielhkuo/enquetes/apperr"
	"github.com/danielhkuo/enquetes/db"
	"github.com/danielhkuo/enquetes/models"
)

// CreatePoll inserts the poll and its options in one transaction.
// Options keep submission order, so their ids ascend in that order.
func (p *Postgres) CreatePoll(ctx context.Context, req models.CreatePollRequest) (int64, error) {
	var pollID int64

	err := db.RunInTx(ctx, p.conn, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO sys_enquete (enq_no_nome, enq_in_status, enq_tx_descricao)
			VALUES ($1, $2, $3)
			RETURNING enq_co_enquete
		`, req.Nome, models.StatusActive, req.Descricao).Scan(&pollID)
		if err != nil {
			return errors.Wrap(err, "insert poll")
		}

		for _, label := range req.Opcoes {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO sys_enquete_opcoes (enq_co_enquete, enqo_no_opcao)
				VALUES ($1, $2)
			`, pollID, label)
			if err != nil {
				return errors.Wrapf(err, "insert option %q", label)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return pollID, nil
}

// ListActivePolls returns the names of active polls ordered by id.
// An empty result is not an error here.
func (p *Postgres) ListActivePolls(ctx context.Context) ([]models.PollSummary, error) {
	rows, err := p.conn.QueryContext(ctx, `
		SELECT enq_no_nome
		FROM sys_enquete
		WHERE enq_in_status = $1
		ORDER BY enq_co_enquete
	`, models.StatusActive)
	if err != nil {
		return nil, errors.Wrap(err, "query active polls")
	}
	defer rows.Close()

	polls := []models.PollSummary{}
	for rows.Next() {
		var s models.PollSummary
		if err := rows.Scan(&s.Nome); err != nil {
			return nil, errors.Wrap(err, "scan poll")
		}
		polls = append(polls, s)
	}

	return polls, errors.Wrap(rows.Err(), "iterate polls")
}

// GetPollDetail loads a poll with its options as (id, label) pairs
func (p *Postgres) GetPollDetail(ctx context.Context, pollID int64) (*models.PollDetail, error) {
	if pollID <= 0 {
		return nil, apperr.NewValidationError(models.MsgInvalidPollID)
	}

	var d models.PollDetail
	err := p.conn.QueryRowContext(ctx, `
		SELECT enq_co_enquete, enq_no_nome, enq_in_status, enq_tx_descricao
		FROM sys_enquete
		WHERE enq_co_enquete = $1
	`, pollID).Scan(&d.ID, &d.Nome, &d.Status, &d.Descricao)
	if err == sql.ErrNoRows {
		return nil, apperr.NewNotFoundError(models.MsgPollNotFound)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query poll %d", pollID)
	}

	options, err := p.ListOptions(ctx, pollID)
	if err != nil {
		return nil, err
	}

	d.Opcoes = make([]models.OptionPair, 0, len(options))
	for _, o := range options {
		d.Opcoes = append(d.Opcoes, models.OptionPair{ID: o.ID, Label: o.Label})
	}

	return &d, nil
}

// DeletePoll removes votes, options and the poll row in that order
func (p *Postgres) DeletePoll(ctx context.Context, pollID int64) error {
	return db.RunInTx(ctx, p.conn, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sys_enquete_voto WHERE enq_co_enquete = $1`, pollID); err != nil {
			return errors.Wrap(err, "delete votes")
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM sys_enquete_opcoes WHERE enq_co_enquete = $1`, pollID); err != nil {
			return errors.Wrap(err, "delete options")
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM sys_enquete WHERE enq_co_enquete = $1`, pollID); err != nil {
			return errors.Wrap(err, "delete poll")
		}
		return nil
	})
}
