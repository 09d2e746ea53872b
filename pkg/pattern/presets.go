package pattern

import (
	"net/url"
	"strings"
)

// Config holds the fixed parts of a compiled expression.
type Config struct {
	// DefaultMatch is the expression used for placeholders without an
	// entry in Pattern.Matches.
	DefaultMatch string

	// Prefix is prepended to the compiled expression.
	Prefix string

	// Postfix is appended to the compiled expression. It may contain
	// auxiliary named groups (names not starting with "_").
	Postfix string
}

// Default expression parts.
const (
	DefaultMatch  = `.+?`
	DefaultPrefix = `^`
	DefaultSuffix = `$`

	// PathMatch keeps a placeholder inside one path segment.
	PathMatch = `[^/]+`

	// URLMatch is PathMatch that also stops at the start of a query string.
	URLMatch = `[^/?]+`

	// QueryGroup is the auxiliary group name used by URLConfig.
	QueryGroup = "query"
)

// DefaultConfig matches anything, one lazy run of characters per placeholder,
// anchored at both ends.
func DefaultConfig() Config {
	return Config{
		DefaultMatch: DefaultMatch,
		Prefix:       DefaultPrefix,
		Postfix:      DefaultSuffix,
	}
}

// PathConfig keeps placeholders from crossing "/" boundaries.
func PathConfig() Config {
	cfg := DefaultConfig()
	cfg.DefaultMatch = PathMatch
	return cfg
}

// URLConfig is PathConfig plus an optional trailing query string captured in
// the auxiliary group QueryGroup. Placeholders stop at "?" so the query is
// never swallowed by the last segment. Patterns using it need a handler
// registered under QueryGroup to parse inputs that carry a query string.
func URLConfig() Config {
	cfg := PathConfig()
	cfg.DefaultMatch = URLMatch
	cfg.Postfix = `(?:(?P<` + QueryGroup + `>\?.*))?` + DefaultSuffix
	return cfg
}

// NewPath creates a Pattern using PathConfig.
func NewPath(text string, opts ...Option) *Pattern {
	return New(text, append([]Option{WithConfig(PathConfig())}, opts...)...)
}

// NewURL creates a Pattern using URLConfig. No query handler is registered;
// pass WithHandler(QueryGroup, ...) or use QueryValuesHandler.
func NewURL(text string, opts ...Option) *Pattern {
	return New(text, append([]Option{WithConfig(URLConfig())}, opts...)...)
}

// QueryValuesHandler returns an AuxHandler that parses a captured query
// string (leading "?" included) and stores the url.Values in kwargs[key].
func QueryValuesHandler(key string) AuxHandler {
	return func(value string, _ map[int]any, kwargs map[string]any) error {
		values, err := url.ParseQuery(strings.TrimPrefix(value, "?"))
		if err != nil {
			return err
		}
		kwargs[key] = values
		return nil
	}
}
