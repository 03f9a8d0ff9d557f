package runner

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Credential is a single named secret supplied by the parent process.
type Credential struct {
	Key   string
	Value string
}

// Credentials preserves the insertion order of the supplied mapping, which
// a plain map would lose.
type Credentials []Credential

// ParseCredentials decodes a JSON object of string pairs, keeping key order.
func ParseCredentials(raw string) (Credentials, error) {
	dec := json.NewDecoder(strings.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid credentials JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("invalid credentials JSON: expected object, got %v", tok)
	}

	var creds Credentials
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid credentials JSON: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid credentials JSON: non-string key %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("invalid credentials JSON: %w", err)
		}

		creds = append(creds, Credential{Key: key, Value: stringifyValue(value)})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid credentials JSON: %w", err)
	}

	return creds, nil
}

// FormatCredentials renders credentials as a human-readable block, one
// "Title Case Key: value" line per entry in insertion order. An empty set
// renders as an empty string.
func FormatCredentials(creds Credentials) string {
	if len(creds) == 0 {
		return ""
	}

	// A cases.Caser is stateful and not safe for concurrent use, so each
	// call gets its own.
	titleCaser := cases.Title(language.English)

	var sb strings.Builder
	for _, c := range creds {
		readableKey := titleCaser.String(strings.ReplaceAll(c.Key, "_", " "))
		sb.WriteString(readableKey)
		sb.WriteString(": ")
		sb.WriteString(c.Value)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

func stringifyValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
