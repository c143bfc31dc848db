package report

import (
	"errors"
	"strings"
)

var (
	// ErrEmptySelection is returned when no fields were requested.
	ErrEmptySelection = errors.New("no fields selected for the report")
	// ErrUnknownDomain is returned for unsupported report types.
	ErrUnknownDomain = errors.New("unknown report domain")
	// ErrInvalidDateRange marks date-range validation failures; the
	// concrete messages travel in DateRangeError.
	ErrInvalidDateRange = errors.New("invalid date range")
	// ErrStore wraps any failure of the store collaborator. Detail is
	// logged at the assembler; callers only see a generic message.
	ErrStore = errors.New("report query failed")
)

// DateRangeError carries the individual validation messages so transport
// layers can show them all at once.
type DateRangeError struct {
	Messages []string
}

func (e *DateRangeError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *DateRangeError) Unwrap() error {
	return ErrInvalidDateRange
}
