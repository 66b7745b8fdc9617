// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables. CLI flags take precedence over environment variables.

Required settings:

  - LINK_SECRET (--link-secret): HMAC secret for capability links
  - ISSUER_KEY (--issuer-key): key required by POST /links
  - DATABASE_URL (-d): connection string, when the sink is db (default)

Optional settings:

  - PORT (-p): server port (default: 3411)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SINK (--sink): db (default) or csv
  - SINK_PATH (--sink-path): csv file path (default: submissions.csv)
  - DEFAULT_ORG (--default-org): identity for unscoped access
    (default: "Instituto Wedja de Socionomia")
  - BASE_URL (--base-url): public base URL embedded in issued links

Secrets should come from the environment in production; the CLI flags exist
for development convenience.
*/
package cliparse
