package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// Category is a normalized category key.
type Category string

// NormalizeCategory converts any caller supplied key to its canonical
// text form: the fmt representation of the value in Unicode NFC. The
// integer 5 and the string "5" yield the same Category.
func NormalizeCategory(key any) Category {
	var s string
	switch v := key.(type) {
	case Category:
		s = string(v)
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}
	return Category(norm.NFC.String(s))
}

// ParseAmount parses a decimal integer amount typed by a user.
//
// Anything that is not an integer yields ErrInvalidArgument. The sign is
// not checked here; negative amounts are rejected by the Sheet operation
// receiving them with ErrInvalidValue.
func ParseAmount(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "amount %q is not an integer", s)
	}
	return n, nil
}
