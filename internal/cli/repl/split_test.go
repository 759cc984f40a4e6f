package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "empty", line: "", want: nil},
		{name: "blank", line: "   \t ", want: nil},
		{name: "plain", line: "SET key value", want: []string{"SET", "key", "value"}},
		{name: "extra spaces", line: "  GET   key  ", want: []string{"GET", "key"}},
		{name: "double quoted", line: `SET k "hello world"`, want: []string{"SET", "k", "hello world"}},
		{name: "empty quoted", line: `SET k ""`, want: []string{"SET", "k", ""}},
		{name: "escapes", line: `SET k "a\nb\t\"c\"\\"`, want: []string{"SET", "k", "a\nb\t\"c\"\\"}},
		{name: "hex escape", line: `SET k "\x41\x62"`, want: []string{"SET", "k", "Ab"}},
		{name: "single quoted", line: `SET k 'it\'s "raw" \n'`, want: []string{"SET", "k", `it's "raw" \n`}},
		{name: "negative index", line: "LRANGE l -2 -1", want: []string{"LRANGE", "l", "-2", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitArgs(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitArgs_Unbalanced(t *testing.T) {
	for _, line := range []string{
		`SET k "open`,
		`SET k 'open`,
		`SET k "a"b`,
		`SET k 'a'b`,
	} {
		_, err := SplitArgs(line)
		assert.ErrorIs(t, err, ErrUnbalancedQuotes, line)
	}
}
