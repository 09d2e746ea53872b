package util

import "unicode/utf8"

// MaxLogInputSize is the default number of bytes of a subject string kept in log lines.
const MaxLogInputSize = 256

// Truncate shortens s to at most maxSize bytes without splitting a UTF-8
// sequence and appends "...(truncated)" when anything was cut.
// If maxSize <= 0, MaxLogInputSize is used.
func Truncate(s string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxLogInputSize
	}
	if len(s) <= maxSize {
		return s
	}
	cut := maxSize
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "...(truncated)"
}
