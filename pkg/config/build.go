package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/getmockd/pattern/pkg/pattern"
	"github.com/getmockd/pattern/pkg/transform"
)

// ErrInvalidPattern reports a pattern entry that cannot be built.
var ErrInvalidPattern = errors.New("invalid pattern definition")

// Preset returns the pattern.Config for a kind.
func Preset(kind Kind) (pattern.Config, error) {
	switch kind {
	case "", KindDefault:
		return pattern.DefaultConfig(), nil
	case KindPath:
		return pattern.PathConfig(), nil
	case KindURL:
		return pattern.URLConfig(), nil
	default:
		return pattern.Config{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidPattern, kind)
	}
}

// Build creates the pattern described by c, resolving transformer specs in reg.
// URL patterns get a query handler storing url.Values under "query".
// The compiled expression is checked before Build returns.
func (c PatternConfig) Build(reg *transform.Registry) (*pattern.Pattern, error) {
	cfg, err := Preset(c.Kind)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", c.Name, err)
	}
	if c.DefaultMatch != "" {
		cfg.DefaultMatch = c.DefaultMatch
	}

	opts := []pattern.Option{pattern.WithConfig(cfg)}
	for token, expr := range c.Matches {
		opts = append(opts, pattern.WithMatch(token, expr))
	}
	if c.Kind == KindURL {
		opts = append(opts, pattern.WithHandler(pattern.QueryGroup, pattern.QueryValuesHandler(pattern.QueryGroup)))
	}

	p := pattern.New(c.Pattern, opts...)

	for token, spec := range c.Transformers {
		fn, err := reg.Resolve(spec)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: transformer for {%s}: %w", c.Name, token, err)
		}
		if idx, err := strconv.Atoi(token); err == nil {
			if idx < 0 {
				return nil, fmt.Errorf("%w: pattern %q: negative index %d", ErrInvalidPattern, c.Name, idx)
			}
			p.Transformers.Positional[idx] = fn
			continue
		}
		p.Transformers.Named[token] = fn
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("pattern %q: %w", c.Name, err)
	}
	return p, nil
}

// Build creates a Set from every pattern in f. A nil registry means
// transform.NewRegistry(); a nil logger disables logging.
func Build(f *File, reg *transform.Registry, logger *slog.Logger) (*Set, error) {
	if reg == nil {
		reg = transform.NewRegistry()
	}
	set := NewSet(logger)
	for _, pc := range f.Patterns {
		p, err := pc.Build(reg)
		if err != nil {
			if src := pc.Source(); src != "" {
				return nil, fmt.Errorf("%s: %w", src, err)
			}
			return nil, err
		}
		if err := set.Add(pc.Name, p); err != nil {
			return nil, err
		}
	}
	return set, nil
}
