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

func (p *Postgres) ListOptions(ctx context.Context, pollID int64) ([]models.Option, error) {
	rows, err := p.conn.QueryContext(ctx, `
		SELECT enqo_co_opcao, enqo_no_opcao
		FROM sys_enquete_opcoes
		WHERE enq_co_enquete = $1
		ORDER BY enqo_co_opcao
	`, pollID)
	if err != nil {
		return nil, errors.Wrapf(err, "query options for poll %d", pollID)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var o models.Option
		if err := rows.Scan(&o.ID, &o.Label); err != nil {
			return nil, errors.Wrap(err, "scan option")
		}
		options = append(options, o)
	}

	return options, errors.Wrap(rows.Err(), "iterate options")
}

func (p *Postgres) AddOption(ctx context.Context, pollID int64, label string) (int64, error) {
	if label == "" {
		return 0, apperr.NewValidationError(models.MsgOptionRequired)
	}

	var optionID int64
	err := p.conn.QueryRowContext(ctx, `
		INSERT INTO sys_enquete_opcoes (enq_co_enquete, enqo_no_opcao)
		VALUES ($1, $2)
		RETURNING enqo_co_opcao
	`, pollID, label).Scan(&optionID)
	if err != nil {
		return 0, errors.Wrapf(err, "insert option for poll %d", pollID)
	}

	return optionID, nil
}

// DeleteOption removes one option and the votes cast for it. The poll row is
// locked for the duration so concurrent deletions cannot take the poll below
// the minimum. The minimum check counts every option of the poll, whether or
// not optionID is one of them.
func (p *Postgres) DeleteOption(ctx context.Context, pollID, optionID int64) error {
	return db.RunInTx(ctx, p.conn, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, `SELECT 1 FROM sys_enquete WHERE enq_co_enquete = $1 FOR UPDATE`, pollID)
		if err != nil {
			return errors.Wrap(err, "lock poll")
		}
		if !ok {
			return apperr.NewNotFoundError(models.MsgPollNotFound)
		}

		var count int
		err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM sys_enquete_opcoes WHERE enq_co_enquete = $1`, pollID).Scan(&count)
		if err != nil {
			return errors.Wrap(err, "count options")
		}
		if count <= models.MinOptions {
			return apperr.NewValidationError(models.MsgMinOptions)
		}

		if p.strict {
			ok, err := exists(ctx, tx, `SELECT 1 FROM sys_enquete_opcoes WHERE enqo_co_opcao = $1 AND enq_co_enquete = $2`, optionID, pollID)
			if err != nil {
				return errors.Wrap(err, "check option")
			}
			if !ok {
				return apperr.NewValidationError(models.MsgOptionNotInPoll)
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM sys_enquete_voto WHERE enq_co_enquete = $1 AND enqo_co_opcao = $2`, pollID, optionID); err != nil {
			return errors.Wrap(err, "delete option votes")
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM sys_enquete_opcoes WHERE enq_co_enquete = $1 AND enqo_co_opcao = $2`, pollID, optionID); err != nil {
			return errors.Wrap(err, "delete option")
		}
		return nil
	})
}
