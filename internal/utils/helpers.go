package utils

import "unicode/utf8"

// Truncate truncates a string to the specified maximum number of characters
// and appends "..." if truncation occurred. The cut is made on a rune
// boundary so multi-byte content is never split mid-character.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "..."
}
