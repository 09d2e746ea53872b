package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/pattern/pkg/pattern"
)

func TestBuiltins(t *testing.T) {
	t.Parallel()

	id := "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		spec  string
		input string
		want  any
	}{
		{"str", "abc", "abc"},
		{"int", "42", 42},
		{"int", "-7", -7},
		{"float", "2.5", 2.5},
		{"bool", "true", true},
		{"upper", "abc", "ABC"},
		{"lower", "AbC", "abc"},
		{"title", "hello world", "Hello World"},
		{"uuid", id, uuid.MustParse(id)},
		{"json", `{"a":1,"b":[true]}`, map[string]any{"a": int64(1), "b": []any{true}}},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.spec+"/"+tt.input, func(t *testing.T) {
			t.Parallel()
			fn, err := r.Resolve(tt.spec)
			require.NoError(t, err)

			got, err := fn(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltins_Errors(t *testing.T) {
	r := NewRegistry()
	for spec, input := range map[string]string{
		"int":   "x",
		"float": "1.2.3",
		"bool":  "maybe",
		"uuid":  "not-a-uuid",
		"json":  "{",
	} {
		fn, err := r.Resolve(spec)
		require.NoError(t, err)
		_, err = fn(input)
		assert.Error(t, err, "%s(%q)", spec, input)
	}
}

func TestResolve_Expr(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		spec  string
		input string
		want  any
	}{
		{"expr:int(value) * 2", "21", 42},
		{`expr:upper(value) + "!"`, "hi", "HI!"},
		{`expr:value == "yes"`, "yes", true},
		{"expr:len(value)", "four", 4},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			fn, err := r.Resolve(tt.spec)
			require.NoError(t, err)
			got, err := fn(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_ExprErrors(t *testing.T) {
	r := NewRegistry()

	for _, spec := range []string{"expr:", "expr:value +", "expr:unknownVar"} {
		_, err := r.Resolve(spec)
		assert.ErrorIs(t, err, ErrInvalidSpec, spec)
	}

	fn, err := r.Resolve("expr:int(value)")
	require.NoError(t, err)
	_, err = fn("abc")
	assert.Error(t, err)
}

func TestResolve_ExprProgramsAreCached(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("expr:value + value")
	require.NoError(t, err)
	_, err = r.Resolve("expr:value + value")
	require.NoError(t, err)

	assert.Len(t, r.programs, 1)
}

func TestResolve_JSONPath(t *testing.T) {
	r := NewRegistry()

	fn, err := r.Resolve("jsonpath:$.user.id")
	require.NoError(t, err)

	got, err := fn(`{"user":{"id":7,"name":"x"}}`)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	_, err = fn(`{"user":{}}`)
	assert.ErrorIs(t, err, ErrNoJSONPathMatch)

	_, err = fn(`not json`)
	assert.Error(t, err)
}

func TestResolve_Unknown(t *testing.T) {
	_, err := NewRegistry().Resolve("nope")
	assert.ErrorIs(t, err, ErrUnknownTransformer)
}

func TestRegister(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("reverse", func(raw string) (any, error) {
		b := []rune(raw)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return string(b), nil
	}))

	fn, err := r.Resolve("reverse")
	require.NoError(t, err)
	got, err := fn("abc")
	require.NoError(t, err)
	assert.Equal(t, "cba", got)

	assert.ErrorIs(t, r.Register("", pattern.Identity), ErrInvalidSpec)
	assert.ErrorIs(t, r.Register("a:b", pattern.Identity), ErrInvalidSpec)
	assert.ErrorIs(t, r.Register("nil", nil), ErrInvalidSpec)
}

func TestNames(t *testing.T) {
	names := NewRegistry().Names()
	assert.Equal(t, []string{"bool", "float", "int", "json", "lower", "str", "title", "upper", "uuid"}, names)
}

func TestTransformersWithPattern(t *testing.T) {
	r := NewRegistry()
	intFn, err := r.Resolve("int")
	require.NoError(t, err)
	upperFn, err := r.Resolve("upper")
	require.NoError(t, err)

	p := pattern.NewPath("/users/{id}/{0}", pattern.WithTransformer("id", intFn), pattern.WithArgTransformers(upperFn))
	res, err := p.Parse("/users/12/profile")
	require.NoError(t, err)
	assert.Equal(t, []any{"PROFILE"}, res.Args)
	assert.Equal(t, map[string]any{"id": 12}, res.Kwargs)

	_, err = p.Parse("/users/x/profile")
	require.Error(t, err)
	assert.False(t, errors.Is(err, pattern.ErrNoMatch))
	assert.True(t, strings.Contains(err.Error(), "invalid syntax"))
}
