package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is returned for a record with the wrong field count or an empty function name.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnknownScope is returned when the scope field is neither "local" nor "global".
	ErrUnknownScope = errors.New("unknown scope")
	// ErrInvalidNumber is returned when a line-number list holds a token that is not a
	// non-negative base-10 integer.
	ErrInvalidNumber = errors.New("invalid line number list")
	// ErrInvalidPosition is returned by Navigator.SetPosition for out-of-range positions.
	ErrInvalidPosition = errors.New("invalid path position")
)

// ParseError describes why a report was rejected. It names the offending record and,
// when the problem is confined to one, the offending field.
type ParseError struct {
	Line   int    // 1-based line number of the record in the report
	Record string // raw record text
	Field  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("report line %d: %s: %q", e.Line, e.Reason, e.Record)
	}

	return fmt.Sprintf("report line %d: field %s: %s: %q", e.Line, e.Field, e.Reason, e.Record)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
