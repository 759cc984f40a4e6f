package logger

import (
	"fmt"
	"log/slog"
)

// MaxPayloadLen is the longest payload attribute written verbatim.
const MaxPayloadLen = 64

// payloadKeys name the attributes that may carry client data.
var payloadKeys = map[string]bool{
	"value":   true,
	"args":    true,
	"payload": true,
}

func truncatePayload(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			out[i] = truncatePayload(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}

	if !payloadKeys[a.Key] {
		return a
	}

	var s string
	switch a.Value.Kind() {
	case slog.KindString:
		s = a.Value.String()
	case slog.KindAny:
		s = fmt.Sprint(a.Value.Any())
	default:
		return a
	}
	return slog.String(a.Key, Truncate(s))
}

// Truncate shortens s to MaxPayloadLen bytes and notes the original size.
func Truncate(s string) string {
	if len(s) <= MaxPayloadLen {
		return s
	}
	return fmt.Sprintf("%s...(%d bytes)", s[:MaxPayloadLen], len(s))
}
