// Package parse provides string parsing utilities for CLI commands.
package parse

import (
	"errors"
	"fmt"
)

// ErrMissingDelimiter is returned for a pair without its delimiter.
var ErrMissingDelimiter = errors.New("missing delimiter")

// KeyValue parses a "key=value" or "key:value" string.
// If delimiters are provided, uses the first one found; otherwise defaults to '='.
// Returns the key, value, and a boolean indicating success.
func KeyValue(s string, delimiters ...rune) (key, value string, ok bool) {
	if len(delimiters) == 0 {
		delimiters = []rune{'='}
	}

	for i, c := range s {
		for _, d := range delimiters {
			if c == d {
				return s[:i], s[i+1:], true
			}
		}
	}
	return "", "", false
}

// Pairs parses "key=value" items into a map. Later items win. The value
// keeps everything after the first delimiter, so "id=[0-9]{1,3}" is fine.
func Pairs(items []string, delimiter rune) (map[string]string, error) {
	result := make(map[string]string, len(items))
	for _, item := range items {
		key, value, ok := KeyValue(item, delimiter)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w %q in %q", ErrMissingDelimiter, delimiter, item)
		}
		result[key] = value
	}
	return result, nil
}
