// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the immutable survey item catalog.

The shipped catalog is the 48-item infrastructure inventory (4 dimensions of
12 items each), embedded as YAML and parsed once at startup:

	cat, err := catalog.Load()

Item order in the YAML file is preserved and defines display and report
ordering. Dimensions are derived by grouping, in first-seen order. The
catalog is read-only after Load; all accessors return copies.
*/
package catalog
