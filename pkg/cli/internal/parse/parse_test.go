package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValue(t *testing.T) {
	tests := []struct {
		in         string
		delims     []rune
		key, value string
		ok         bool
	}{
		{"a=b", nil, "a", "b", true},
		{"a=b=c", nil, "a", "b=c", true},
		{"a:b", []rune{':'}, "a", "b", true},
		{"a:b=c", []rune{'=', ':'}, "a", "b=c", true},
		{"ab", nil, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, value, ok := KeyValue(tt.in, tt.delims...)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestPairs(t *testing.T) {
	got, err := Pairs([]string{"id=[0-9]{1,3}", "name=x", "name=y"}, '=')
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "[0-9]{1,3}", "name": "y"}, got)

	got, err = Pairs(nil, '=')
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Pairs([]string{"novalue"}, '=')
	require.ErrorIs(t, err, ErrMissingDelimiter)

	_, err = Pairs([]string{"=value"}, '=')
	require.ErrorIs(t, err, ErrMissingDelimiter)
}
