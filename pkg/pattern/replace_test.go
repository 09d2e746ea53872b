package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		kwargs   map[string]any
		want     string
	}{
		{
			name:     "named and positional",
			template: "/{root}/{branch}/{leaf}/{0}",
			args:     []any{"d"},
			kwargs:   map[string]any{"root": "a", "branch": "b", "leaf": 3},
			want:     "/a/b/3/d",
		},
		{"no fields", "/static", nil, nil, "/static"},
		{"escaped braces", "{{x}} {0} }}", []any{1}, nil, "{x} 1 }"},
		{"automatic numbering", "{}-{}", []any{1, 2}, nil, "1-2"},
		{"repeated index", "{0}{0}", []any{"ab"}, nil, "abab"},
		{"unused kwargs are ignored", "{a}", nil, map[string]any{"a": 1, "b": 2}, "1"},
		{"repr conversion", "{0!r}", []any{"x"}, nil, `"x"`},
		{"str conversion with spec", "{0!s:>3}", []any{7}, nil, "  7"},
		{"right align", "{0:>5}", []any{"ab"}, nil, "   ab"},
		{"fill and left align", "{0:*<6}", []any{"ab"}, nil, "ab****"},
		{"center", "{0:^7}", []any{"abc"}, nil, "  abc  "},
		{"string precision", "{0:.2}", []any{"abcdef"}, nil, "ab"},
		{"zero padded float", "{0:05.1f}", []any{3.14159}, nil, "003.1"},
		{"forced sign", "{0:+d}", []any{5}, nil, "+5"},
		{"negative padded", "{0:5d}", []any{-3}, nil, "   -3"},
		{"sign aware padding", "{0:=+6d}", []any{42}, nil, "+   42"},
		{"hex", "{0:x}/{0:X}", []any{255}, nil, "ff/FF"},
		{"binary and octal", "{0:b} {1:o}", []any{5, 8}, nil, "101 10"},
		{"percent", "{0:.1%}", []any{0.5}, nil, "50.0%"},
		{"exponent", "{0:.2e}", []any{1234.5}, nil, "1.23e+03"},
		{"default float", "{0:}", []any{2.5}, nil, "2.5"},
		{"int width default right", "{n:4}", nil, map[string]any{"n": 12}, "  12"},
		{"unsigned", "{0:d}", []any{uint8(200)}, nil, "200"},
		{"nested width", "{a:{w}}", nil, map[string]any{"a": "x", "w": 5}, "x    "},
		{"nested automatic numbering", "{:{}}", []any{"ab", 4}, nil, "ab  "},
		{"nested width and precision", "{0:{1}.{2}f}", []any{3.14159, 8, 2}, nil, "    3.14"},
		{"nested with conversion", "{a!r:>{w}}", nil, map[string]any{"a": "x", "w": 5}, `  "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Format(tt.template, tt.args, tt.kwargs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplace_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		kwargs   map[string]any
	}{
		{"missing name", "{a}", nil, nil},
		{"missing index", "{1}", []any{"x"}, nil},
		{"extra positional", "{0}", []any{"a", "b"}, nil},
		{"positional without fields", "static", []any{"a"}, nil},
		{"auto then manual", "{}{0}", []any{"a"}, nil},
		{"manual then auto", "{0}{}", []any{"a", "b"}, nil},
		{"single open brace", "a{b", nil, map[string]any{"b": 1}},
		{"single close brace", "a}b", nil, nil},
		{"nested too deep", "{0:{1:{2}}}", []any{"a", 3, 1}, nil},
		{"brace in field name", "{a{b}}", nil, map[string]any{"b": 1}},
		{"unterminated nested field", "{a:{w}", nil, map[string]any{"a": 1, "w": 2}},
		{"attribute access", "{a.b}", nil, map[string]any{"a": 1}},
		{"bad conversion", "{0!x}", []any{"a"}, nil},
		{"int code on string", "{0:d}", []any{"a"}, nil},
		{"string code on int", "{0:s}", []any{1}, nil},
		{"sign on string", "{0:+}", []any{"a"}, nil},
		{"unknown code", "{0:q}", []any{"a"}, nil},
		{"missing precision", "{0:.f}", []any{1.0}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Format(tt.template, tt.args, tt.kwargs)
			assert.ErrorIs(t, err, ErrTemplate)
		})
	}
}

func TestReplace_NestedErrorNamesWholeField(t *testing.T) {
	_, err := Format("{a:{w}}", nil, map[string]any{"a": "x"})
	require.ErrorIs(t, err, ErrTemplate)

	var te *TemplateError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "w", te.Field)

	_, err = Format("{a:{w}}", nil, map[string]any{"w": 2})
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "a:{w}", te.Field)
}

func TestReplace_IgnoresMatchingConfiguration(t *testing.T) {
	p := NewURL("/items/{id}", WithMatch("id", `[0-9]+`), WithTransformer("id", atoi))

	got, err := p.Replace(nil, map[string]any{"id": "abc"})
	require.NoError(t, err)
	assert.Equal(t, "/items/abc", got)
}

func TestReplace_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		template string
		kwargs   map[string]any
	}{
		{"/users/{user}/posts/{post}", map[string]any{"user": "alice", "post": "hello-world"}},
		{"{a}-{b}", map[string]any{"a": "foo", "b": "bar"}},
		{"{greeting}, {name}!", map[string]any{"greeting": "Hi there", "name": "Bob"}},
		{"{only}", map[string]any{"only": "a/b/c.d"}},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			t.Parallel()
			p := New(tt.template)
			rendered, err := p.Replace(nil, tt.kwargs)
			require.NoError(t, err)

			res, err := p.Parse(rendered)
			require.NoError(t, err)
			assert.Equal(t, tt.kwargs, res.Kwargs)
			assert.Empty(t, res.Args)
		})
	}
}

func TestParse_LiteralOnlyPatternParsesItself(t *testing.T) {
	for _, text := range []string{"", "/", "/static/file.txt", `a.b*c?d[e]`, "^$|\\"} {
		res, err := New(text).Parse(text)
		require.NoError(t, err, text)
		assert.Empty(t, res.Args)
		assert.Empty(t, res.Kwargs)
	}
}
