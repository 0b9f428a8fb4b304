package errorkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// String returns the canonical description of the error.
//
// Format (keys always in this order, optional keys only when present):
//
//	{"name": "<name>", "type": "<type>", "source": "<source>", "timestamp": "<ts>", "reason": "<reason>"}
//
// Every value is rendered as an escaped JSON string, so the description is valid
// JSON that decodes into a map[string]string.
func (w Wrapper[E, S]) String() string {
	return describe(w.Name(), w.Type(), w.SourceName(), w.backing.meta)
}

// GoString implements fmt.GoStringer for %#v.
func (w Wrapper[E, S]) GoString() string {
	return fmt.Sprintf("errorkit.Wrapper[%s]%s", w.Name(), w.String())
}

func describe(name, typ, source string, meta metadata) string {
	var sb strings.Builder
	sb.WriteString("{")
	writeField(&sb, "name", name, true)
	writeField(&sb, "type", typ, false)
	writeField(&sb, "source", source, false)
	if meta.hasTimestamp {
		writeField(&sb, "timestamp", strconv.FormatInt(meta.timestamp, 10), false)
	}
	if meta.hasReason {
		writeField(&sb, "reason", meta.reason, false)
	}
	sb.WriteString("}")
	return sb.String()
}

func writeField(sb *strings.Builder, key, value string, first bool) {
	if !first {
		sb.WriteString(", ")
	}
	sb.WriteString(quote(key))
	sb.WriteString(": ")
	sb.WriteString(quote(value))
}

// quote returns s as a JSON string literal without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
