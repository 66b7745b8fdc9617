// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

Three handler groups:

  - FormHandler: resolves capability links and serves the grouped catalog
  - SubmissionHandler: preview scoring and final submission to the sink
  - LinkHandler: issues signed links (operator-only, X-Issuer-Key)

Every respondent-facing endpoint starts with resolveLink, which is the only
code that reads the org/exp/sig query parameters. A rejected link is terminal:
403 with the specific reason, nothing else runs. Downstream code only ever
sees the ValidatedLink, so the organization identity can't be spoofed by raw
query input.

The flow per submission is sequential: validate, score, gate, build, append.
Handlers hold no mutable state of their own; the sink is the only shared
resource and serializes its own writes.
*/
package handlers
