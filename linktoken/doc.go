// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package linktoken signs and validates capability links.

A capability link scopes a submission to one organization without any account
system. The query string carries three parameters:

	org  percent-encoded organization name, as signed
	exp  unix-seconds expiry (inclusive)
	sig  lowercase hex HMAC-SHA256 over "org|exp"

# Validation

	p, err := linktoken.ParseParams(r.URL.RawQuery)
	link, err := linktoken.Validate(p, time.Now(), secret, defaultOrg)

Validate branches three ways: all parameters absent yields the configured
default identity (IsDefault true); a partial subset is always rejected with
MissingParameters; a complete triple is checked signature-first with a
constant-time comparison, then for expiry. Rejections carry a specific
Reason and are terminal for the request.

# Issuing

	u, err := linktoken.BuildURL(base, "Acme", time.Now().Add(7*24*time.Hour), secret)

The secret is process-wide configuration and is never derived from request
data. Since signatures are deterministic, nothing is persisted at issue time:
the signature itself is the capability.
*/
package linktoken
