// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sink abstracts the append-only destination for submission rows.

The core only needs an "append batch of rows" capability:

	type Sink interface {
		AppendRows(ctx context.Context, rows [][]string) error
	}

A batch lands as one unit or the attempt is reported as failed; callers keep
the built Submission in memory either way and may retry.

Three implementations ship: DB (one transaction per batch, postgres or
sqlite), CSV (append-only local file), and Memory (tests). Delivery failure
is the caller's SinkUnavailable condition; it never crashes the process.
*/
package sink
