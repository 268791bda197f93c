package service

import (
	"strings"
	"unicode/utf8"
)

// optionalText trims s and returns nil when it is empty. ok is false when
// the trimmed text is longer than max runes.
func optionalText(s *string, max int) (text *string, ok bool) {
	if s == nil {
		return nil, true
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil, true
	}
	if utf8.RuneCountInString(trimmed) > max {
		return nil, false
	}
	return &trimmed, true
}

// requiredText trims s and reports whether it is empty or longer than max runes
func requiredText(s string, max int) (text string, empty bool, tooLong bool) {
	text = strings.TrimSpace(s)
	if text == "" {
		return "", true, false
	}
	return text, false, utf8.RuneCountInString(text) > max
}
