package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// groupPrefix marks capture groups created from placeholders so they never
// collide with auxiliary groups.
const groupPrefix = "_"

// placeholder is one "{TOKEN}" site in a template.
type placeholder struct {
	start, end int // byte offsets of "{" and one past "}"
	token      string
}

// isToken reports whether s is a valid placeholder token:
// 0 | [_a-zA-Z1-9][_a-zA-Z0-9]*
func isToken(s string) bool {
	if s == "0" {
		return true
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '1' && c <= '9':
		case c == '0' && i > 0:
		default:
			return false
		}
	}
	return true
}

// scanPlaceholders returns the placeholder sites of text, left to right and
// non-overlapping. A "{" preceded by another "{" never opens a placeholder.
func scanPlaceholders(text string) []placeholder {
	var sites []placeholder
	for i := 0; i < len(text); i++ {
		if text[i] != '{' || (i > 0 && text[i-1] == '{') {
			continue
		}
		end := strings.IndexByte(text[i+1:], '}')
		if end < 0 {
			break
		}
		token := text[i+1 : i+1+end]
		if !isToken(token) {
			continue
		}
		sites = append(sites, placeholder{start: i, end: i + end + 2, token: token})
		i += end + 1
	}
	return sites
}

// Tokens returns the placeholder tokens of the template in order of appearance.
func (p *Pattern) Tokens() []string {
	sites := scanPlaceholders(p.text)
	tokens := make([]string, len(sites))
	for i, s := range sites {
		tokens[i] = s.token
	}
	return tokens
}

// Regex returns the anchored expression for the current state of the
// Pattern: the template quoted as literal text, every placeholder replaced by
// a named group "(?P<_TOKEN>EXPR)", wrapped in Config.Prefix and Config.Postfix.
// EXPR is Matches[TOKEN] when present and Config.DefaultMatch otherwise.
func (p *Pattern) Regex() (string, error) {
	var b strings.Builder
	b.WriteString(p.config.Prefix)

	seen := make(map[string]struct{})
	last := 0
	for _, site := range scanPlaceholders(p.text) {
		if _, dup := seen[site.token]; dup {
			return "", fmt.Errorf("%w: {%s} in %q", ErrDuplicateToken, site.token, p.text)
		}
		seen[site.token] = struct{}{}

		b.WriteString(regexp.QuoteMeta(p.text[last:site.start]))
		expr, ok := p.Matches[site.token]
		if !ok {
			expr = p.config.DefaultMatch
		}
		b.WriteString("(?P<" + groupPrefix + site.token + ">" + expr + ")")
		last = site.end
	}
	b.WriteString(regexp.QuoteMeta(p.text[last:]))

	b.WriteString(p.config.Postfix)
	return b.String(), nil
}

// compile builds and compiles the expression returned by Regex.
func (p *Pattern) compile() (*regexp.Regexp, error) {
	expr, err := p.Regex()
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w for pattern %q: %w", ErrInvalidExpression, p.text, err)
	}
	return re, nil
}

// Validate compiles the current expression and reports any error, without
// matching anything.
func (p *Pattern) Validate() error {
	_, err := p.compile()
	return err
}
