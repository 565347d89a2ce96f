package validators

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var plainText = bluemonday.StrictPolicy()

// SanitizeString strips markup from free-form customer input, trims it and
// caps it at maxLen bytes without splitting a rune. maxLen <= 0 means no cap.
func SanitizeString(input string, maxLen int) string {
	cleaned := strings.TrimSpace(html.UnescapeString(plainText.Sanitize(input)))
	if maxLen <= 0 || len(cleaned) <= maxLen {
		return cleaned
	}
	cut := cleaned[:maxLen]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return strings.TrimSpace(cut)
}
