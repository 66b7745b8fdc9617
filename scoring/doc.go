// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring turns raw Likert responses into comparable scores.

Per item: N/A (or anything unparseable) stays N/A and is excluded from every
mean; reverse items score 6 - raw; everything else scores raw. Per dimension:
arithmetic mean of the numeric scores, omitted entirely when a dimension has
none. Overall: mean across all numeric scores.

The completion gate requires at least ceil(total/2) answered items before a
submission may be built. Score is a pure function over the catalog and the
response map; it never mutates shared state.
*/
package scoring
