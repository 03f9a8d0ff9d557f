package engine

import "strings"

// extractResult pulls the final result payload out of raw engine stdout.
// When the engine marks its result with a marker line, the last marked line
// wins; otherwise the trimmed stdout is the result.
func extractResult(raw, marker string) string {
	cleaned := stripANSI(raw)

	if marker != "" {
		var result string
		for _, line := range strings.Split(cleaned, "\n") {
			line = strings.TrimSpace(line)
			if rest, ok := strings.CutPrefix(line, marker); ok {
				result = strings.TrimSpace(rest)
			}
		}
		if result != "" {
			return result
		}
	}

	return strings.TrimSpace(cleaned)
}

func stripANSI(s string) string {
	// Simple ANSI escape code removal
	result := strings.Builder{}
	inEscape := false

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}
