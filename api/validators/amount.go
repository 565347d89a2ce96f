package validators

import (
	"bytes"
	"encoding/json"
)

// RawAmount turns a JSON amount field into the raw candidate handed to a
// quantity control. Strings are unquoted, anything else is passed through as
// written so malformed input reaches the control and gets rejected there.
// present is false when the field was omitted or null.
func RawAmount(raw json.RawMessage) (candidate string, present bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s, true
	}
	return string(trimmed), true
}
