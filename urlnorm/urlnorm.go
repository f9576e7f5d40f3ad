// Package urlnorm validates and canonicalizes user-entered URLs.
package urlnorm

import (
	"errors"
	"net/url"
	"strings"
)

// Errors returned by Normalize.
var (
	ErrEmptyInput = errors.New("input is empty")
	ErrInvalidURL = errors.New("input is not a valid http or https URL")
)

// Normalize turns raw user input into the canonical absolute form of an
// http or https URL. Input that lacks a scheme is retried with "http://"
// prepended, so "example.com/page" normalizes to "http://example.com/page".
// Already-canonical input passes through unchanged, which makes Normalize
// idempotent.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyInput
	}

	if canonical, ok := parseAbsolute(trimmed); ok {
		return canonical, nil
	}
	if canonical, ok := parseAbsolute("http://" + trimmed); ok {
		return canonical, nil
	}
	return "", ErrInvalidURL
}

// parseAbsolute reports whether candidate is an absolute http/https URL with
// a host, and returns its canonical string form when it is.
func parseAbsolute(candidate string) (string, bool) {
	u, err := url.Parse(candidate)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}
	return u.String(), true
}
