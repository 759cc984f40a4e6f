package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yndnr/mudb-go/pkg/resp"
)

func render(t *testing.T, f Formatter, v resp.Value) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Format(&buf, v))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"plain", "json", "YAML"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(strings.ToLower(name)), f)
	}

	_, err := ParseFormat("table")
	assert.Error(t, err)
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &PlainFormatter{}, NewFormatter(FormatPlain))
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &PlainFormatter{}, NewFormatter(""))
}

func TestPlainFormatter(t *testing.T) {
	tests := []struct {
		name string
		v    resp.Value
		want string
	}{
		{name: "simple string", v: resp.SimpleString("PONG"), want: "PONG\n"},
		{name: "error", v: resp.SimpleError("ERR unknown command: FOO"), want: "(error) ERR unknown command: FOO\n"},
		{name: "integer", v: resp.Integer(3), want: "(integer) 3\n"},
		{name: "bulk string", v: resp.BulkString("hello"), want: "\"hello\"\n"},
		{name: "bulk string with quotes", v: resp.BulkString(`say "hi"`), want: "\"say \\\"hi\\\"\"\n"},
		{name: "null", v: resp.Null, want: "(nil)\n"},
		{name: "empty array", v: resp.Array{}, want: "(empty array)\n"},
		{name: "array", v: resp.BulkStrings("a", "b"), want: "1) \"a\"\n2) \"b\"\n"},
		{
			name: "nested array",
			v:    resp.Array{resp.BulkString("a"), resp.Array{resp.Integer(1), resp.Integer(2)}},
			want: "1) \"a\"\n2) 1) (integer) 1\n   2) (integer) 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, &PlainFormatter{}, tt.v))
		})
	}
}

func TestPlainFormatter_AlignsNumbers(t *testing.T) {
	parts := make([]string, 10)
	for i := range parts {
		parts[i] = "x"
	}
	lines := strings.Split(strings.TrimSuffix(render(t, &PlainFormatter{}, resp.BulkStrings(parts...)), "\n"), "\n")

	require.Len(t, lines, 10)
	assert.Equal(t, ` 1) "x"`, lines[0])
	assert.Equal(t, `10) "x"`, lines[9])
}

func TestJSONFormatter(t *testing.T) {
	f := &JSONFormatter{}

	assert.Equal(t, "\"PONG\"\n", render(t, f, resp.SimpleString("PONG")))
	assert.Equal(t, "3\n", render(t, f, resp.Integer(3)))
	assert.Equal(t, "null\n", render(t, f, resp.Null))
	assert.Equal(t, "[\n  \"a\",\n  \"b\"\n]\n", render(t, f, resp.BulkStrings("a", "b")))
	assert.Equal(t, "[]\n", render(t, f, resp.Array{}))
	assert.JSONEq(t, `{"error": "WRONGTYPE bad"}`, render(t, f, resp.SimpleError("WRONGTYPE bad")))
}

func TestYAMLFormatter(t *testing.T) {
	f := &YAMLFormatter{}

	assert.Equal(t, "PONG\n", render(t, f, resp.SimpleString("PONG")))
	assert.Equal(t, "3\n", render(t, f, resp.Integer(3)))
	assert.Equal(t, "- a\n- b\n", render(t, f, resp.BulkStrings("a", "b")))
	assert.Equal(t, "error: ERR boom\n", render(t, f, resp.SimpleError("ERR boom")))
	assert.YAMLEq(t, "null", render(t, f, resp.Null))
}

func TestToData(t *testing.T) {
	v := resp.Array{resp.BulkString("a"), resp.Integer(1), resp.Null, resp.SimpleError("ERR x")}
	assert.Equal(t, []any{"a", int64(1), nil, map[string]string{"error": "ERR x"}}, ToData(v))
}
