// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the likert-collect API server.

likert-collect gathers structured Likert survey responses from independent
organizations through disposable signed links, scores them deterministically
(reverse-coded items, N/A handling, per-dimension means, completion gate),
and appends finalized submission rows to an append-only sink.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	LINK_SECRET=... ISSUER_KEY=... DATABASE_URL=file:collect.db go run main.go

Or with flags:

	go run main.go -p 3411 -d "file:collect.db" --link-secret ... --issuer-key ...

# Configuration

Required settings:

  - LINK_SECRET (--link-secret): HMAC secret for capability links
  - ISSUER_KEY (--issuer-key): key required to issue links
  - DATABASE_URL (-d): connection string (unless SINK=csv)

Optional settings:

  - PORT (-p): server port (default: 3411)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SINK (--sink): db or csv (default: db)
  - SINK_PATH (--sink-path): csv file path
  - DEFAULT_ORG (--default-org): identity for unscoped access
  - BASE_URL (--base-url): public base URL for issued links

# Architecture

The server uses a handler-based architecture with dependency injection:

  - catalog: embedded, immutable survey item catalog
  - linktoken: capability-link signing and validation
  - scoring: reverse transform, dimension means, completion gate
  - submission: immutable submission record and sink row layout
  - sink: append-only batch destinations (db, csv, memory)
  - handlers: HTTP request handlers (form, submissions, links)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
