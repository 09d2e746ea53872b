package config

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/pattern/pkg/pattern"
)

func TestSet_Match(t *testing.T) {
	set := NewSet(nil)
	require.NoError(t, set.Add("users", pattern.NewPath("/users/{id}", pattern.WithMatch("id", "[0-9]+"))))
	require.NoError(t, set.Add("named", pattern.NewPath("/users/{name}")))
	require.NoError(t, set.Add("any", pattern.New("{0}")))

	tests := []struct {
		input    string
		wantName string
		wantArgs []any
		wantKw   map[string]any
	}{
		{"/users/7", "users", []any{}, map[string]any{"id": "7"}},
		{"/users/bob", "named", []any{}, map[string]any{"name": "bob"}},
		{"/other/path", "any", []any{"/other/path"}, map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, res, err := set.Match(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, res.Args)
			assert.Equal(t, tt.wantKw, res.Kwargs)
		})
	}
}

func TestSet_Match_NoneMatched(t *testing.T) {
	set := NewSet(nil)
	require.NoError(t, set.Add("a", pattern.New("a")))

	_, _, err := set.Match("b")
	require.ErrorIs(t, err, ErrNoPatternMatched)

	_, _, err = NewSet(nil).Match("")
	require.ErrorIs(t, err, ErrNoPatternMatched)
}

func TestSet_Match_StopsOnTransformerError(t *testing.T) {
	boom := errors.New("boom")
	set := NewSet(nil)
	require.NoError(t, set.Add("failing", pattern.New("{0}", pattern.WithArgTransformers(func(string) (any, error) {
		return nil, boom
	}))))
	require.NoError(t, set.Add("fallback", pattern.New("{0}")))

	_, _, err := set.Match("x")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `pattern "failing"`)
}

func TestSet_Match_LogsMisses(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	set := NewSet(logger)
	require.NoError(t, set.Add("a", pattern.New("a")))
	require.NoError(t, set.Add("b", pattern.New("b")))

	name, _, err := set.Match("b")
	require.NoError(t, err)
	assert.Equal(t, "b", name)
	assert.Contains(t, buf.String(), "pattern did not match")
	assert.Contains(t, buf.String(), "pattern=a")
	assert.Contains(t, buf.String(), "pattern matched")
}

func TestSet_AddDuplicate(t *testing.T) {
	set := NewSet(nil)
	require.NoError(t, set.Add("a", pattern.New("a")))
	require.ErrorIs(t, set.Add("a", pattern.New("b")), ErrDuplicateName)
	assert.Equal(t, []string{"a"}, set.Names())

	_, ok := set.Get("missing")
	assert.False(t, ok)
}
