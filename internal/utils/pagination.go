// Package utils provides small helpers shared across layers, independent
// of domain logic.
package utils

import "strconv"

// Listing endpoints cap page sizes so a single request cannot pull the
// whole donations table.
const maxPageSize = 200

// AtoiDefault converts s to an int, returning def when s is empty or not
// a valid integer.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// PageParams parses limit and offset query values into sane pagination
// bounds: limit defaults to defLimit and is clamped to [1, 200], offset
// defaults to 0 and never goes negative.
func PageParams(limitStr, offsetStr string, defLimit int) (limit, offset int) {
	limit = AtoiDefault(limitStr, defLimit)
	if limit < 1 {
		limit = defLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset = AtoiDefault(offsetStr, 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
