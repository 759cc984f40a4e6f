package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleter_Complete(t *testing.T) {
	c := NewCompleter()

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{name: "push commands", prefix: "l", want: []string{"LPUSH", "LRANGE"}},
		{name: "case insensitive", prefix: "lr", want: []string{"LRANGE"}},
		{name: "exact", prefix: "GET", want: []string{"GET"}},
		{name: "builtin", prefix: "hi", want: []string{"history"}},
		{name: "builtin upper case", prefix: "EX", want: []string{"exit"}},
		{name: "no match", prefix: "flushall", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Complete(tt.prefix))
		})
	}
}

func TestCompleter_EmptyPrefixListsAll(t *testing.T) {
	c := NewCompleter()
	all := c.Complete("")

	assert.Len(t, all, len(c.commands))
	assert.Contains(t, all, "PING")
	assert.Contains(t, all, "quit")
}
