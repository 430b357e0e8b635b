// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Enquetes API server.

Enquetes is a small poll service: create a poll with options, vote once per
user per poll (a new vote replaces the old one), read the counts, and manage
options while keeping at least two on every poll.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 5000 -d "postgres://..." -driver pgx

A .env file in the working directory is loaded when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_DRIVER (-driver): postgres (lib/pq) or pgx (default: postgres)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)
  - STRICT_REFERENCES (-strict): reject votes whose poll, option or user
    do not match (default: false)

# Architecture

  - handlers: HTTP request handlers (polls, voting, results, options, health)
  - router: chi route table and middleware chain
  - middleware: request id, logging, CORS, JSON helpers
  - store: SQL data access and business rules
  - db: connection pool, schema creation, transactions
  - models: request/response types and validation
  - apperr: typed application errors
  - logger: zap wrapper
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
