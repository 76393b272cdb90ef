package protocol

import (
	"errors"
	"fmt"
)

const (
	// Feed ingestion.
	ErrFeedSchema = "E_FEED_SCHEMA"
	ErrFeedDecode = "E_FEED_DECODE"
	ErrFeedSource = "E_FEED_SOURCE"

	ErrBadRequest = "E_BAD_REQUEST"
	ErrInternal   = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrFeedSchema: {},
	ErrFeedDecode: {},
	ErrFeedSource: {},
	ErrBadRequest: {},
	ErrInternal:   {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}

// Error carries a machine code next to the wrapped cause.
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Code, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

func Errorf(code, format string, args ...any) error {
	return &Error{Code: code, Err: fmt.Errorf(format, args...)}
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}
