// Package urlcheck decides whether user input is a well-formed absolute URL.
//
// The check is purely syntactic: nothing is resolved or fetched.
package urlcheck

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalid is returned by Parse for input that is not an absolute URL.
var ErrInvalid = errors.New("not an absolute url")

// Parse returns the parsed URL when input carries a scheme, a "://" separator
// and a non-empty host. Surrounding whitespace is ignored.
func Parse(input string) (*url.URL, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalid)
	}
	if strings.ContainsAny(input, " \t\r\n") {
		return nil, fmt.Errorf("%w: contains whitespace", ErrInvalid)
	}
	sep := strings.Index(input, "://")
	if sep <= 0 {
		return nil, fmt.Errorf("%w: missing scheme", ErrInvalid)
	}
	parsed, err := url.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	// url.Parse accepts "a/b://c" as a relative path; the scheme must be the
	// text right before the separator.
	if parsed.Scheme == "" || !strings.EqualFold(parsed.Scheme, input[:sep]) {
		return nil, fmt.Errorf("%w: missing scheme", ErrInvalid)
	}
	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalid)
	}
	return parsed, nil
}

// Valid reports whether input is a well-formed absolute URL.
func Valid(input string) bool {
	_, err := Parse(input)
	return err == nil
}
