// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request and response types of the HTTP API.

Error responses carry a machine-readable reason alongside the status text:

	{"error": "Forbidden", "reason": "bad_signature"}

Reasons for link rejection come from the linktoken package; the handlers add
gate_blocked (completion threshold not met, recoverable by answering more
items) and sink_unavailable (delivery failed, recoverable by retry).
*/
package models
