package service

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<.*?>`)

// SanitizeText strips tag-like <...> spans and surrounding whitespace.
// It is a thin XSS guard, not an HTML sanitizer: nested or unterminated tags can survive.
func SanitizeText(text string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(text, ""))
}
