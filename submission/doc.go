// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package submission builds the immutable record handed to the sink: one row
// per catalog item carrying both the raw response and the adjusted score,
// keyed by a deterministic short hash of the organization name.
package submission
