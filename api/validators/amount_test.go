package validators

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		present bool
	}{
		{"omitted", "", "", false},
		{"null", "null", "", false},
		{"number", "3", "3", true},
		{"string", `"4"`, "4", true},
		{"garbage string", `"abc"`, "abc", true},
		{"quoted once only", `"\"5\""`, `"5"`, true},
		{"fraction", "2.5", "2.5", true},
		{"bool", "true", "true", true},
	}
	for _, tt := range tests {
		got, present := RawAmount(json.RawMessage(tt.raw))
		assert.Equal(t, tt.present, present, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
