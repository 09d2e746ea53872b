package config

// Kind selects the preset a pattern is built with.
type Kind string

// Pattern kinds.
const (
	KindDefault Kind = "default"
	KindPath    Kind = "path"
	KindURL     Kind = "url"
)

// File is a pattern-set document.
type File struct {
	// Version is the document format version. Only "1" exists.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Include lists glob patterns (doublestar syntax) of further files to
	// load, relative to the including file.
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`

	// Patterns are tried in order by Set.Match.
	Patterns []PatternConfig `json:"patterns" yaml:"patterns"`
}

// PatternConfig describes one named pattern.
type PatternConfig struct {
	// Name identifies the pattern inside a Set.
	Name string `json:"name" yaml:"name"`

	// Pattern is the template text, e.g. "/users/{id}".
	Pattern string `json:"pattern" yaml:"pattern"`

	// Kind picks the preset. Empty means KindDefault.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// DefaultMatch overrides the preset's expression for placeholders
	// without an entry in Matches.
	DefaultMatch string `json:"defaultMatch,omitempty" yaml:"defaultMatch,omitempty"`

	// Matches maps named tokens to override expressions.
	Matches map[string]string `json:"matches,omitempty" yaml:"matches,omitempty"`

	// Transformers maps tokens to transformer specs. Integer keys address
	// positional tokens.
	Transformers map[string]string `json:"transformers,omitempty" yaml:"transformers,omitempty"`

	// source is the file the entry was loaded from, for error messages.
	source string
}

// Source returns the file the pattern was loaded from, if any.
func (c PatternConfig) Source() string {
	return c.source
}
