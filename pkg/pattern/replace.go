package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// Replace renders the template with args substituted for positional fields
// and kwargs for named fields. It works on the template text alone and
// ignores Matches, Transformers and Config.
//
// The field syntax follows common format-string conventions:
//
//	{0} {name}     explicit index or name
//	{}             next index, cannot be mixed with explicit indexes
//	{x!r} {x!s}    quoted or plain rendering
//	{x:>8} {0:.2f} fill, alignment, sign, width, precision and type
//	{x:>{w}}       one level of fields nested in the spec
//	{{ }}          literal braces
//
// Replace fails with ErrTemplate when a field has no value, when some of args
// are never referenced, or when the template is malformed. Unused kwargs are
// ignored.
func (p *Pattern) Replace(args []any, kwargs map[string]any) (string, error) {
	return Format(p.text, args, kwargs)
}

// Format renders a template the way Pattern.Replace does.
func Format(text string, args []any, kwargs map[string]any) (string, error) {
	f := formatter{args: args, kwargs: kwargs, used: make([]bool, len(args))}
	out, err := f.format(text, 0)
	if err != nil {
		return "", err
	}
	for i, used := range f.used {
		if !used {
			return "", &TemplateError{Reason: fmt.Sprintf("positional value %d is not referenced (%d supplied)", i, len(args))}
		}
	}
	return out, nil
}

type numbering int

const (
	numberingUnset numbering = iota
	numberingAuto
	numberingManual
)

type formatter struct {
	args      []any
	kwargs    map[string]any
	used      []bool
	numbering numbering
	next      int
}

// maxNesting is how deep replacement fields may nest inside a format spec,
// as in "{0:{1}}".
const maxNesting = 1

func (f *formatter) format(text string, depth int) (string, error) {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := fieldEnd(text, i+1)
			if end < 0 {
				if strings.IndexByte(text[i+1:], '}') < 0 {
					return "", &TemplateError{Reason: "single '{' encountered in format string"}
				}
				return "", &TemplateError{Field: text[i+1:], Reason: "expected '}' before end of string"}
			}
			field := text[i+1 : end]
			if depth >= maxNesting && strings.IndexByte(field, '{') >= 0 {
				return "", &TemplateError{Field: field, Reason: "max string recursion exceeded"}
			}
			s, err := f.field(field, depth)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
			i = end
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", &TemplateError{Reason: "single '}' encountered in format string"}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// fieldEnd returns the index of the "}" closing the field that starts at
// start, counting nested braces, or -1.
func fieldEnd(text string, start int) int {
	depth := 1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// field renders one replacement field: name[!conv][:spec]. Fields nested in
// spec are rendered after the value itself is looked up.
func (f *formatter) field(field string, depth int) (string, error) {
	name, rest := field, ""
	if i := strings.IndexAny(field, "!:"); i >= 0 {
		name, rest = field[:i], field[i:]
	}
	if strings.IndexByte(name, '{') >= 0 {
		return "", &TemplateError{Field: field, Reason: "unexpected '{' in field name"}
	}

	var conv byte
	if strings.HasPrefix(rest, "!") {
		if len(rest) < 2 || (len(rest) > 2 && rest[2] != ':') {
			return "", &TemplateError{Field: field, Reason: "expected ':' after conversion specifier"}
		}
		conv = rest[1]
		if conv != 's' && conv != 'r' {
			return "", &TemplateError{Field: field, Reason: fmt.Sprintf("unknown conversion specifier %q", string(conv))}
		}
		rest = rest[2:]
	}
	spec := strings.TrimPrefix(rest, ":")

	v, err := f.lookup(field, name)
	if err != nil {
		return "", err
	}

	if strings.ContainsAny(spec, "{}") {
		if spec, err = f.format(spec, depth+1); err != nil {
			return "", err
		}
	}

	switch conv {
	case 's':
		v = fmt.Sprint(v)
	case 'r':
		v = reprValue(v)
	}

	s, err := formatValue(v, spec)
	if err != nil {
		return "", &TemplateError{Field: field, Reason: err.Error()}
	}
	return s, nil
}

func (f *formatter) lookup(field, name string) (any, error) {
	if name == "" {
		if f.numbering == numberingManual {
			return nil, &TemplateError{Field: field, Reason: "cannot switch from manual field numbering to automatic field numbering"}
		}
		f.numbering = numberingAuto
		idx := f.next
		f.next++
		return f.arg(field, idx)
	}

	if idx, err := strconv.Atoi(name); err == nil && idx >= 0 && name[0] != '+' {
		if f.numbering == numberingAuto {
			return nil, &TemplateError{Field: field, Reason: "cannot switch from automatic field numbering to manual field numbering"}
		}
		f.numbering = numberingManual
		return f.arg(field, idx)
	}

	if strings.ContainsAny(name, ".[") {
		return nil, &TemplateError{Field: field, Reason: "attribute and index access are not supported"}
	}
	v, ok := f.kwargs[name]
	if !ok {
		return nil, &TemplateError{Field: field, Reason: fmt.Sprintf("no value for %q", name)}
	}
	return v, nil
}

func (f *formatter) arg(field string, idx int) (any, error) {
	if idx >= len(f.args) {
		return nil, &TemplateError{Field: field, Reason: fmt.Sprintf("positional index %d out of range (%d supplied)", idx, len(f.args))}
	}
	f.used[idx] = true
	return f.args[idx], nil
}
