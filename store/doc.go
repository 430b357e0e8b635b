// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements every poll operation on top of PostgreSQL.

	s := store.New(conn, cfg)
	id, err := s.CreatePoll(ctx, req)

Handlers depend on the Store interface; tests substitute
testutil.MemoryStore.

# Rules

  - CreatePoll inserts the poll and its options in one transaction, in
    submission order.
  - Vote is an upsert keyed by (poll, user), so a user holds at most one
    vote per poll and voting again moves it.
  - GetResults left-joins votes onto options, so options without votes are
    reported with zero.
  - DeleteOption locks the poll row, refuses unless the poll has more than
    two options, then removes the option's votes and the option.
  - DeletePoll removes votes, options and the poll in one transaction.

# Strict References

With cfg.StrictReferences set, Vote checks that the poll exists, that the
option belongs to the poll and that the user exists, and DeleteOption
rejects options of other polls. Without it, a vote naming an option of
another poll is stored as sent and a foreign DeleteOption is a no-op.

# Errors

Rule violations are *apperr.AppError values. Driver errors are wrapped with
github.com/pkg/errors and surface as 500s.
*/
package store
