package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/getmockd/pattern/pkg/logging"
	"github.com/getmockd/pattern/pkg/pattern"
	"github.com/getmockd/pattern/pkg/util"
)

// Set errors.
var (
	ErrDuplicateName    = errors.New("duplicate pattern name")
	ErrNoPatternMatched = errors.New("no pattern matched")
)

type entry struct {
	name    string
	pattern *pattern.Pattern
}

// Set is an ordered collection of named patterns. Build it once, then share
// it freely: Match and Get only read.
type Set struct {
	entries []entry
	byName  map[string]*pattern.Pattern
	logger  *slog.Logger
}

// NewSet creates an empty Set. A nil logger disables logging.
func NewSet(logger *slog.Logger) *Set {
	return &Set{
		byName: make(map[string]*pattern.Pattern),
		logger: logging.OrNop(logger),
	}
}

// Add appends a pattern under name.
func (s *Set) Add(name string, p *pattern.Pattern) error {
	if _, exists := s.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	s.entries = append(s.entries, entry{name: name, pattern: p})
	s.byName[name] = p
	return nil
}

// Get returns the pattern stored under name.
func (s *Set) Get(name string) (*pattern.Pattern, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// Names returns the pattern names in insertion order.
func (s *Set) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.name
	}
	return names
}

// Len returns the number of patterns.
func (s *Set) Len() int {
	return len(s.entries)
}

// Match parses input with each pattern in order and returns the first
// success. A pattern that does not match is skipped; any other error (a
// failing transformer or handler, an invalid expression) stops the search.
func (s *Set) Match(input string) (string, *pattern.Result, error) {
	for _, e := range s.entries {
		res, err := e.pattern.Parse(input)
		if err == nil {
			s.logger.Debug("pattern matched", "pattern", e.name, "input", util.Truncate(input, 0))
			return e.name, res, nil
		}
		if errors.Is(err, pattern.ErrNoMatch) {
			s.logger.Debug("pattern did not match", "pattern", e.name, "input", util.Truncate(input, 0))
			continue
		}
		return "", nil, fmt.Errorf("pattern %q: %w", e.name, err)
	}
	return "", nil, fmt.Errorf("%w: %q", ErrNoPatternMatched, input)
}
