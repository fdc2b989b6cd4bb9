package matrix

import (
	"strings"

	"compat-hq/licensegate/pkg/spdx"
)

// Row maps a dependency license symbol to its verdict against one main
// license.
type Row map[string]TriState

// Matrix maps a main license symbol to its compatibility row. Both key
// levels hold normalized symbols. A Matrix is immutable after load.
type Matrix map[string]Row

// Empty reports whether the matrix holds no rows.
func (m Matrix) Empty() bool {
	return len(m) == 0
}

// HasMain reports whether the matrix has a row for the given main
// license symbol.
func (m Matrix) HasMain(main string) bool {
	_, ok := m[main]
	return ok
}

// Lookup returns the verdict for a dependency license against a main
// license. The dependency key is tried raw, then normalized, then
// trimmed; a missing row or entry yields Unknown.
func (m Matrix) Lookup(main, dep string) TriState {
	row, ok := m[main]
	if !ok {
		return Unknown
	}
	if st, ok := row[dep]; ok {
		return st
	}
	if st, ok := row[spdx.Normalize(dep)]; ok {
		return st
	}
	if st, ok := row[strings.TrimSpace(dep)]; ok {
		return st
	}
	return Unknown
}
