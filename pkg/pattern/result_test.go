package pattern

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Apply(t *testing.T) {
	res := &Result{Args: []any{"x"}, Kwargs: map[string]any{"n": 3}}

	var gotArgs []any
	var gotKwargs map[string]any
	out, err := res.Apply(func(args []any, kwargs map[string]any) (any, error) {
		gotArgs, gotKwargs = args, kwargs
		return strings.Repeat(args[0].(string), kwargs["n"].(int)), nil
	})

	require.NoError(t, err)
	assert.Equal(t, "xxx", out)
	assert.Equal(t, []any{"x"}, gotArgs)
	assert.Equal(t, map[string]any{"n": 3}, gotKwargs)
}

func TestResult_Call(t *testing.T) {
	t.Run("positional and keyword values", func(t *testing.T) {
		res := New("/{0}/{beta}", WithTransformer("beta", atoi)).MustParse("/alpha/5")

		out, err := res.Call(func(a string, kwargs map[string]any) (string, int, string) {
			option, ok := kwargs["option"].(string)
			if !ok {
				option = "foo"
			}
			beta, ok := kwargs["beta"].(int)
			if !ok {
				beta = 10
			}
			return a + "123", beta - 10, option
		})

		require.NoError(t, err)
		assert.Equal(t, []any{"alpha123", -5, "foo"}, out)
	})

	t.Run("keyword map receives empty map", func(t *testing.T) {
		res := &Result{Args: []any{"a"}}
		out, err := res.Call(func(s string, kwargs map[string]any) int { return len(kwargs) })
		require.NoError(t, err)
		assert.Equal(t, []any{0}, out)
	})

	t.Run("variadic", func(t *testing.T) {
		res := &Result{Args: []any{"a", "b", "c"}}
		out, err := res.Call(func(first string, rest ...string) string {
			return first + ":" + strings.Join(rest, ",")
		})
		require.NoError(t, err)
		assert.Equal(t, []any{"a:b,c"}, out)
	})

	t.Run("interface parameters", func(t *testing.T) {
		res := &Result{Args: []any{1, nil}}
		out, err := res.Call(func(a, b any) string { return fmt.Sprint(a, b) })
		require.NoError(t, err)
		assert.Equal(t, []any{"1 <nil>"}, out)
	})

	t.Run("error result is returned separately", func(t *testing.T) {
		boom := errors.New("boom")
		res := &Result{Args: []any{"a"}}
		out, err := res.Call(func(string) (int, error) { return 7, boom })
		assert.Same(t, boom, err)
		assert.Equal(t, []any{7}, out)
	})

	t.Run("nil error result", func(t *testing.T) {
		res := &Result{}
		out, err := res.Call(func() error { return nil })
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestResult_CallMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		res  *Result
		fn   any
	}{
		{"not a function", &Result{}, 42},
		{"untyped nil", &Result{}, nil},
		{"nil function", &Result{Args: []any{"a"}}, (func(string))(nil)},
		{"too few values", &Result{Args: []any{"a"}}, func(a, b string) {}},
		{"too many values", &Result{Args: []any{"a", "b"}}, func(a string) {}},
		{"wrong type", &Result{Args: []any{"x"}}, func(n int) {}},
		{"nil for value type", &Result{Args: []any{nil}}, func(n int) {}},
		{"unexpected keyword values", &Result{Args: []any{"a"}, Kwargs: map[string]any{"n": 1}}, func(a string) {}},
		{"variadic with keyword values", &Result{Kwargs: map[string]any{"n": 1}}, func(rest ...string) {}},
		{"variadic element type", &Result{Args: []any{1}}, func(rest ...string) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.res.Call(tt.fn)
			assert.ErrorIs(t, err, ErrCallMismatch)
		})
	}
}

func TestResult_String(t *testing.T) {
	res := New("{0}{1}{a}").MustParse("123456")
	assert.Equal(t, `Result("1", "2", a="3456")`, res.String())

	res = New("/{0}/{beta}", WithTransformer("beta", atoi)).MustParse("/alpha/5")
	assert.Equal(t, `Result("alpha", beta=5)`, res.String())

	assert.Equal(t, "Result()", (&Result{}).String())
}
