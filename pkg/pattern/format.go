package pattern

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// formatSpec is a parsed [[fill]align][sign][0][width][.precision][type] specifier.
type formatSpec struct {
	fill      rune
	align     rune // 0 or one of < > ^ =
	sign      rune // 0 or one of + - space
	width     int
	precision int // -1 when unset
	verb      rune // 0 or one of formatVerbs
}

const formatVerbs = "sdxXobeEfFgG%"

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func parseSpec(spec string) (formatSpec, error) {
	fs := formatSpec{fill: ' ', precision: -1}
	rs := []rune(spec)
	i := 0

	switch {
	case len(rs) >= 2 && isAlign(rs[1]):
		fs.fill, fs.align = rs[0], rs[1]
		i = 2
	case len(rs) >= 1 && isAlign(rs[0]):
		fs.align = rs[0]
		i = 1
	}

	if i < len(rs) && (rs[i] == '+' || rs[i] == '-' || rs[i] == ' ') {
		fs.sign = rs[i]
		i++
	}

	if i < len(rs) && rs[i] == '0' {
		if fs.align == 0 {
			fs.fill, fs.align = '0', '='
		}
		i++
	}

	start := i
	for i < len(rs) && isDigit(rs[i]) {
		i++
	}
	if i > start {
		fs.width, _ = strconv.Atoi(string(rs[start:i]))
	}

	if i < len(rs) && rs[i] == '.' {
		i++
		start = i
		for i < len(rs) && isDigit(rs[i]) {
			i++
		}
		if i == start {
			return fs, errors.New("format specifier missing precision")
		}
		fs.precision, _ = strconv.Atoi(string(rs[start:i]))
	}

	if i < len(rs) {
		if !strings.ContainsRune(formatVerbs, rs[i]) {
			return fs, fmt.Errorf("unknown format code %q", string(rs[i]))
		}
		fs.verb = rs[i]
		i++
	}

	if i < len(rs) {
		return fs, fmt.Errorf("invalid format specifier %q", spec)
	}
	return fs, nil
}

// formatValue renders v according to spec. An empty spec is fmt.Sprint.
func formatValue(v any, spec string) (string, error) {
	if spec == "" {
		return fmt.Sprint(v), nil
	}
	fs, err := parseSpec(spec)
	if err != nil {
		return "", err
	}

	var (
		body    string
		neg     bool
		numeric bool
		ok      bool
	)

	switch fs.verb {
	case 'd', 'x', 'X', 'o', 'b':
		base := map[rune]int{'d': 10, 'x': 16, 'X': 16, 'o': 8, 'b': 2}[fs.verb]
		body, neg, ok = intDigits(v, base)
		if !ok {
			return "", fmt.Errorf("unknown format code %q for value of type %T", string(fs.verb), v)
		}
		if fs.verb == 'X' {
			body = strings.ToUpper(body)
		}
		numeric = true

	case 'e', 'E', 'f', 'F', 'g', 'G', '%':
		var f float64
		f, ok = floatValue(v)
		if !ok {
			return "", fmt.Errorf("unknown format code %q for value of type %T", string(fs.verb), v)
		}
		prec := fs.precision
		if prec < 0 {
			prec = 6
		}
		body, neg = floatDigits(f, fs.verb, prec)
		numeric = true

	default: // 's' or none
		if s, isString := v.(string); isString {
			body = s
		} else if fs.verb == 's' {
			return "", fmt.Errorf("unknown format code 's' for value of type %T", v)
		} else if digits, n, isInt := intDigits(v, 10); isInt && fs.precision < 0 {
			body, neg, numeric = digits, n, true
		} else if f, isFloat := floatValue(v); isFloat {
			body, neg = floatDigits(f, 'g', fs.precision)
			numeric = true
		} else {
			body = fmt.Sprint(v)
		}
		if !numeric && fs.precision >= 0 && utf8.RuneCountInString(body) > fs.precision {
			body = string([]rune(body)[:fs.precision])
		}
	}

	var prefix string
	if numeric {
		switch {
		case neg:
			prefix = "-"
		case fs.sign == '+':
			prefix = "+"
		case fs.sign == ' ':
			prefix = " "
		}
	} else {
		if fs.sign != 0 {
			return "", errors.New("sign not allowed in string format specifier")
		}
		if fs.align == '=' {
			return "", errors.New("'=' alignment not allowed in string format specifier")
		}
	}

	return pad(prefix, body, fs, numeric), nil
}

func pad(prefix, body string, fs formatSpec, numeric bool) string {
	n := fs.width - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(body)
	if n <= 0 {
		return prefix + body
	}

	align := fs.align
	if align == 0 {
		align = '<'
		if numeric {
			align = '>'
		}
	}

	fill := func(k int) string { return strings.Repeat(string(fs.fill), k) }
	switch align {
	case '=':
		return prefix + fill(n) + body
	case '>':
		return fill(n) + prefix + body
	case '^':
		left := n / 2
		return fill(left) + prefix + body + fill(n-left)
	default:
		return prefix + body + fill(n)
	}
}

// intDigits returns the magnitude of an integer value in base and whether it is negative.
func intDigits(v any, base int) (digits string, neg bool, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return strconv.FormatUint(uint64(-(n+1))+1, base), true, true
		}
		return strconv.FormatInt(n, base), false, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), base), false, true
	default:
		return "", false, false
	}
}

func floatValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

// floatDigits formats the magnitude of f. A negative precision means the
// shortest representation.
func floatDigits(f float64, verb rune, precision int) (string, bool) {
	neg := math.Signbit(f) && !math.IsNaN(f)
	f = math.Abs(f)

	switch verb {
	case '%':
		return strconv.FormatFloat(f*100, 'f', precision, 64) + "%", neg
	case 'F':
		return strings.ToUpper(strconv.FormatFloat(f, 'f', precision, 64)), neg
	default:
		return strconv.FormatFloat(f, byte(verb), precision, 64), neg
	}
}
