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

const upsertVote = `
	INSERT INTO sys_enquete_voto (enq_co_enquete, enqo_co_opcao, usu_co_usuario)
	VALUES ($1, $2, $3)
	ON CONFLICT (enq_co_enquete, usu_co_usuario)
	DO UPDATE SET enqo_co_opcao = EXCLUDED.enqo_co_opcao
`

// Vote records or replaces the user's vote on the poll.
// In strict mode the poll, the option's membership and the user are checked
// in the same transaction as the upsert.
func (p *Postgres) Vote(ctx context.Context, pollID, optionID, userID int64) error {
	if pollID == 0 || optionID == 0 || userID == 0 {
		return apperr.NewValidationError(models.MsgVoteInvalid)
	}

	if !p.strict {
		if _, err := p.conn.ExecContext(ctx, upsertVote, pollID, optionID, userID); err != nil {
			return errors.Wrap(err, "upsert vote")
		}
		return nil
	}

	return db.RunInTx(ctx, p.conn, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, `SELECT 1 FROM sys_enquete WHERE enq_co_enquete = $1`, pollID)
		if err != nil {
			return errors.Wrap(err, "check poll")
		}
		if !ok {
			return apperr.NewValidationError(models.MsgVotePollMissing)
		}

		ok, err = exists(ctx, tx, `SELECT 1 FROM sys_enquete_opcoes WHERE enqo_co_opcao = $1 AND enq_co_enquete = $2`, optionID, pollID)
		if err != nil {
			return errors.Wrap(err, "check option")
		}
		if !ok {
			return apperr.NewValidationError(models.MsgVoteOptionMismatch)
		}

		ok, err = exists(ctx, tx, `SELECT 1 FROM sys_usuario WHERE usu_co_usuario = $1`, userID)
		if err != nil {
			return errors.Wrap(err, "check user")
		}
		if !ok {
			return apperr.NewValidationError(models.MsgVoteUserMissing)
		}

		if _, err := tx.ExecContext(ctx, upsertVote, pollID, optionID, userID); err != nil {
			return errors.Wrap(err, "upsert vote")
		}
		return nil
	})
}

// GetResults counts votes per option of the poll, ordered by option id.
// Options without votes are reported with zero.
func (p *Postgres) GetResults(ctx context.Context, pollID int64) ([]models.OptionResult, error) {
	rows, err := p.conn.QueryContext(ctx, `
		SELECT o.enqo_no_opcao, COUNT(v.enqv_co_voto)
		FROM sys_enquete_opcoes o
		LEFT JOIN sys_enquete_voto v ON v.enqo_co_opcao = o.enqo_co_opcao
		WHERE o.enq_co_enquete = $1
		GROUP BY o.enqo_co_opcao, o.enqo_no_opcao
		ORDER BY o.enqo_co_opcao
	`, pollID)
	if err != nil {
		return nil, errors.Wrapf(err, "query results for poll %d", pollID)
	}
	defer rows.Close()

	results := []models.OptionResult{}
	for rows.Next() {
		var r models.OptionResult
		if err := rows.Scan(&r.Label, &r.Votes); err != nil {
			return nil, errors.Wrap(err, "scan result")
		}
		results = append(results, r)
	}

	return results, errors.Wrap(rows.Err(), "iterate results")
}
