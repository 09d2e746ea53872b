// Package flags provides the repeatable flag types used by patternctl.
//
// Neither type splits a value on commas the way pflag's slice flags do, so
// expressions such as "id=[0-9]{2,4}" arrive intact.
package flags

import (
	"errors"
	"strings"

	"github.com/getmockd/pattern/pkg/cli/internal/parse"
)

// ErrEmptyPair is returned when a token=value flag is given an empty value.
var ErrEmptyPair = errors.New("empty token=value pair")

// Values collects every occurrence of a repeatable flag in order. Empty
// values are kept since they are valid positional values.
type Values []string

func (v *Values) String() string { return strings.Join(*v, ",") }

func (v *Values) Set(value string) error {
	*v = append(*v, value)
	return nil
}

func (v *Values) Type() string { return "value" }

// Pairs collects repeatable token=value flags such as --match id=[0-9]+.
// The delimiter is checked by Map, after all flags are parsed, so the error
// can name the flag it came from.
type Pairs []string

func (p *Pairs) String() string { return strings.Join(*p, ",") }

// Set appends value, rejecting blank input outright.
func (p *Pairs) Set(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyPair
	}
	*p = append(*p, value)
	return nil
}

func (p *Pairs) Type() string { return "token=value" }

// Map splits every pair at its first "=". Later pairs win.
func (p *Pairs) Map() (map[string]string, error) {
	return parse.Pairs(*p, '=')
}
