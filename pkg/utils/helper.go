package utils

import (
	"strconv"
)

// ParseID converts a path segment into a positive int64 record id.
// ok is false for anything that is not a base-10 integer above zero.
func ParseID(value string) (int64, bool) {
	if value == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}
