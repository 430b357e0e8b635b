// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and runs transactions.

# Connecting

Open selects the database/sql driver named by the configuration and pings
before returning:

	conn, err := db.Open(ctx, cfg)

Both drivers are registered: "postgres" (lib/pq, the default) and "pgx"
(jackc/pgx stdlib). The pool keeps at most 25 open and 5 idle connections,
recycling them after 2 hours or 5 idle minutes.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - sys_usuario: users, created outside this service
  - sys_enquete: polls with name, status ('A' = active) and description
  - sys_enquete_opcoes: options per poll
  - sys_enquete_voto: one vote per user per poll

# Relationships

	sys_enquete 1──* sys_enquete_opcoes
	sys_enquete 1──* sys_enquete_voto
	sys_enquete_opcoes 1──* sys_enquete_voto
	sys_usuario 1──* sys_enquete_voto

Foreign keys do not cascade. Deleting a poll or an option removes the
dependent rows first, inside one transaction.

# Transactions

RunInTx commits when the callback returns nil and rolls back on error or
panic:

	err := db.RunInTx(ctx, conn, func(tx *sql.Tx) error {
		...
	})

Errors returned by the callback come back unchanged, so application errors
keep their type.
*/
package db
