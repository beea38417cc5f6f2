package usecase

import (
	"errors"

	"movie-records/pkg/utils"
)

// ErrMovieNotFound covers both a malformed id and an id with no record
var ErrMovieNotFound = errors.New("movie not found")

// ValidationError reports a payload that is missing or has invalid fields.
// Nothing has been written to the store when it is returned.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Message
	}
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}
