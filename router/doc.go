// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

Routes:

	GET  /health                 liveness check
	GET  /form                   resolve link, return catalog + identity
	POST /form/preview           score without submitting
	POST /form/submissions       score, gate, build, append to sink
	POST /links                  issue a signed link (X-Issuer-Key)

The form endpoints read the org/exp/sig scoping triple from the query string;
see the linktoken package for the validation rules.
*/
package router
