// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: PostgreSQL connection string (required)
  - DatabaseDriver: "postgres" (lib/pq) or "pgx" (pgx stdlib), default "postgres"
  - LogLevel: debug, info, warn or error (default: info)
  - StrictReferences: check poll/option/user references on votes (default: false)

# Sources

Values are read, lowest precedence first, from:

  - a .env file in the working directory, if present
  - environment variables
  - CLI flags

# CLI Flags

	-p          Server port
	-d          Database URL
	-driver     Database driver
	-log-level  Log level
	-strict     Enable strict reference checks

# Environment Variables

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_DRIVER   → -driver
	LOG_LEVEL         → -log-level
	STRICT_REFERENCES → -strict

# Validation

ParseFlags returns an error if DATABASE_URL is missing, the port is out of
range or the driver is not one of DriverPostgres / DriverPgx.
*/
package cliparse
