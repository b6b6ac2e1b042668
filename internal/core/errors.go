package core

import "github.com/pkg/errors"

// Error kinds reported by Sheet operations. Callers match them with
// errors.Is; the wrapped message names the offending category or value.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidValue    = errors.New("invalid value")
	ErrNotFound        = errors.New("not found")
)

// Kind names the error kind of err, or "" when err is nil or not one of
// the sheet error kinds.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidArgument):
		return "InvalidArgument"
	case errors.Is(err, ErrInvalidValue):
		return "InvalidValue"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	default:
		return ""
	}
}
