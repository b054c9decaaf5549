package namespace

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator splits a namespace path into segments.
const Separator = "."

var (
	// ErrInvalidPath is returned when a segment is empty, numeric, or starts
	// with a digit.
	ErrInvalidPath = errors.New("namespace: invalid path")

	// ErrInvalidInput is returned by Walk for an empty path.
	ErrInvalidInput = errors.New("namespace: a non-empty path is required")
)

// numeric matches segments that read as a number once leading digits and
// whitespace are already ruled out and trailing whitespace is trimmed:
// "+1", "-2e3", "-Infinity".
var numeric = regexp.MustCompile(`^[+-]?([0-9]+([eE][+-]?[0-9]+)?|Infinity)$`)

// Split validates path and returns its segments.
//
//	namespace.Split("app.views.Home")  // ["app" "views" "Home"], nil
//	namespace.Split("1app.views")      // nil, ErrInvalidPath
func Split(path string) ([]string, error) {
	parts := strings.Split(path, Separator)
	for i, seg := range parts {
		if reason := checkSegment(seg); reason != "" {
			return nil, fmt.Errorf("%w: segment %d of %q %s", ErrInvalidPath, i, path, reason)
		}
	}
	return parts, nil
}

// Validate reports whether path is a usable namespace path.
func Validate(path string) error {
	_, err := Split(path)
	return err
}

// Join is the inverse of Split.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// checkSegment returns why seg is rejected, or "" if it is fine.
func checkSegment(seg string) string {
	if seg == "" {
		return "is empty"
	}
	r, _ := utf8.DecodeRuneInString(seg)
	switch {
	case r >= '0' && r <= '9':
		return "starts with a digit"
	case isSpace(r):
		return "starts with whitespace"
	case numeric.MatchString(strings.TrimRightFunc(seg, isSpace)):
		return "is a number"
	}
	return ""
}

// isSpace reports whether r is whitespace or a line terminator when a
// string is read as a number: the Zs category plus tab, vertical tab,
// form feed, BOM, line feed, carriage return and U+2028/U+2029.
// U+0085 is not included.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
