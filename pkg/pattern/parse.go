package pattern

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Parse matches s against the compiled expression and returns the captured
// values.
//
// Groups created from placeholders are passed through their Transformer: an
// integer token lands in Result.Args, any other token in Result.Kwargs. Other
// named groups that took part in the match are handed to the AuxHandler
// registered under their name. Errors from transformers and handlers are
// returned unchanged.
func (p *Pattern) Parse(s string) (*Result, error) {
	re, err := p.compile()
	if err != nil {
		return nil, err
	}

	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil, &MatchError{Input: s, Pattern: p.text}
	}

	args := make(map[int]any)
	kwargs := make(map[string]any)

	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			// Group did not take part in the match.
			continue
		}
		value := s[start:end]

		token, ok := strings.CutPrefix(name, groupPrefix)
		if !ok {
			h := p.Handlers[name]
			if h == nil {
				return nil, &MissingHandlerError{Group: name}
			}
			if err := h(value, args, kwargs); err != nil {
				return nil, err
			}
			continue
		}

		if idx, err := strconv.Atoi(token); err == nil {
			v, err := p.Transformers.positional(idx)(value)
			if err != nil {
				return nil, err
			}
			args[idx] = v
			continue
		}

		v, err := p.Transformers.named(token)(value)
		if err != nil {
			return nil, err
		}
		kwargs[token] = v
	}

	ordered := make([]any, 0, len(args))
	for _, idx := range slices.Sorted(maps.Keys(args)) {
		ordered = append(ordered, args[idx])
	}

	return &Result{Args: ordered, Kwargs: kwargs}, nil
}

// MustParse is like Parse but panics on error.
func (p *Pattern) MustParse(s string) *Result {
	res, err := p.Parse(s)
	if err != nil {
		panic(err)
	}
	return res
}

// MatchString reports whether s satisfies the pattern. Transformers and handlers
// are not run.
func (p *Pattern) MatchString(s string) (bool, error) {
	re, err := p.compile()
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}
