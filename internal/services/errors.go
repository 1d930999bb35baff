package services

import (
	"errors"
	"fmt"
)

// ErrNoUpcomingDraw is returned when none of the draws in the lookahead
// window falls after the reference instant. It cannot happen with the
// fixed twice-weekly rules.
var ErrNoUpcomingDraw = errors.New("no upcoming draw in lookahead window")

// DateParseError reports a reference timestamp that could not be parsed.
type DateParseError struct {
	Input string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("parse date %q: %v", e.Input, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// TimezoneError reports an unknown or malformed timezone identifier.
type TimezoneError struct {
	Zone string
	Err  error
}

func (e *TimezoneError) Error() string {
	return fmt.Sprintf("load timezone %q: %v", e.Zone, e.Err)
}

func (e *TimezoneError) Unwrap() error { return e.Err }

// IsInputError reports whether err was caused by caller input rather than
// an internal failure.
func IsInputError(err error) bool {
	var dpe *DateParseError
	var tze *TimezoneError
	return errors.As(err, &dpe) || errors.As(err, &tze)
}
