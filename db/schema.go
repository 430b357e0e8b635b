// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const Schema = `
-- Users (managed outside this service)
CREATE TABLE IF NOT EXISTS sys_usuario (
    usu_co_usuario BIGSERIAL PRIMARY KEY,
    usu_no_nome VARCHAR(200) NOT NULL,
    usu_no_email VARCHAR(200) NOT NULL UNIQUE
);

-- Polls
CREATE TABLE IF NOT EXISTS sys_enquete (
    enq_co_enquete BIGSERIAL PRIMARY KEY,
    enq_no_nome VARCHAR(60) NOT NULL,
    enq_in_status CHAR(1) NOT NULL DEFAULT 'A',
    enq_tx_descricao VARCHAR(2000) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_enquete_status ON sys_enquete(enq_in_status);

-- Options
CREATE TABLE IF NOT EXISTS sys_enquete_opcoes (
    enqo_co_opcao BIGSERIAL PRIMARY KEY,
    enq_co_enquete BIGINT NOT NULL REFERENCES sys_enquete(enq_co_enquete),
    enqo_no_opcao VARCHAR(200) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_enquete_opcoes_enquete ON sys_enquete_opcoes(enq_co_enquete);

-- Votes, one per user per poll
CREATE TABLE IF NOT EXISTS sys_enquete_voto (
    enqv_co_voto BIGSERIAL PRIMARY KEY,
    enq_co_enquete BIGINT NOT NULL REFERENCES sys_enquete(enq_co_enquete),
    enqo_co_opcao BIGINT NOT NULL REFERENCES sys_enquete_opcoes(enqo_co_opcao),
    usu_co_usuario BIGINT NOT NULL REFERENCES sys_usuario(usu_co_usuario),
    UNIQUE (enq_co_enquete, usu_co_usuario)
);

CREATE INDEX IF NOT EXISTS idx_enquete_voto_opcao ON sys_enquete_voto(enqo_co_opcao);
`
