// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db bootstraps the database schema for the DB sink.

One table, submission_row, append-only by contract. Indexed on org_id_hash
(the grouping key for downstream analysis) and submitted_at.

	CreateSchema(conn)

is idempotent and runs unchanged on postgres (lib/pq) and sqlite
(modernc.org/sqlite).
*/
package db
