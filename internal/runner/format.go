package runner

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/Echen1246/force.ai/internal/utils"
)

// Display limits for formatted results.
const (
	maxResultChars = 500
	maxListEntries = 10
	rawPreviewLen  = 200
)

// Fixed sentences used by the normalization chain.
const (
	successSentence = "Task completed successfully"
	noItemsSentence = "Task completed - no items found"
	noDataSentence  = "Task completed - no data returned"
)

// Formatted is the outcome of result normalization. Degraded marks output
// that was recovered from a formatting failure rather than produced by the
// normal chain; Cause carries the recovered failure.
type Formatted struct {
	Text     string
	Degraded bool
	Cause    error
}

// textBearer covers engine results that expose their display text directly.
type textBearer interface {
	Text() string
}

// messageBearer covers results that carry a message instead.
type messageBearer interface {
	Message() string
}

// resultCheck is one step of the normalization chain. Checks run in order;
// the first one that applies wins.
type resultCheck struct {
	name  string
	apply func(v any) (string, bool)
}

var resultChecks = []resultCheck{
	{name: "nil", apply: checkNil},
	{name: "string", apply: checkString},
	{name: "text_bearing", apply: checkTextBearing},
	{name: "keyed_map", apply: checkKeyedMap},
	{name: "list", apply: checkList},
	{name: "mapping", apply: checkMapping},
}

// Agent object wrappers stringify as Agent(...) or AgentHistoryList(...);
// neither is useful to a human, so they collapse to the success sentence.
var agentWrapperPattern = regexp.MustCompile(`(?s)^Agent[A-Za-z]*\(.*\)$`)

// FormatResult normalizes an opaque engine result into a bounded
// human-readable string. It never fails: any internal panic is recovered
// into a degraded message carrying a preview of the raw value.
func FormatResult(value any) (f Formatted) {
	defer func() {
		if r := recover(); r != nil {
			f = Formatted{
				Text:     degradedText(value),
				Degraded: true,
				Cause:    fmt.Errorf("formatting result: %v", r),
			}
		}
	}()

	for _, check := range resultChecks {
		if text, ok := check.apply(value); ok {
			// The character budget applies to every branch.
			return Formatted{Text: utils.Truncate(text, maxResultChars)}
		}
	}

	return Formatted{Text: utils.Truncate(formatFallback(value), maxResultChars)}
}

func checkNil(v any) (string, bool) {
	if v == nil {
		return successSentence, true
	}
	return "", false
}

func checkString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s), true
	}
	return "", false
}

func checkTextBearing(v any) (string, bool) {
	switch b := v.(type) {
	case textBearer:
		return strings.TrimSpace(b.Text()), true
	case messageBearer:
		return strings.TrimSpace(b.Message()), true
	}
	return "", false
}

// checkKeyedMap handles decoded JSON objects that carry their payload under
// a conventional key. Precedence: text, content, result.
func checkKeyedMap(v any) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", false
	}

	for _, key := range []string{"text", "content", "result"} {
		if payload, present := m[key]; present {
			return strings.TrimSpace(fmt.Sprint(payload)), true
		}
	}

	return "", false
}

func checkList(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return "", false
	}

	n := rv.Len()
	switch n {
	case 0:
		return noItemsSentence, true
	case 1:
		return fmt.Sprintf("Found: %v", rv.Index(0).Interface()), true
	}

	var sb strings.Builder
	shown := n
	if shown > maxListEntries {
		shown = maxListEntries
	}
	for i := 0; i < shown; i++ {
		fmt.Fprintf(&sb, "%d. %v\n", i+1, rv.Index(i).Interface())
	}
	if n > maxListEntries {
		fmt.Fprintf(&sb, "... and %d more items", n-maxListEntries)
	}

	return strings.TrimSpace(sb.String()), true
}

func checkMapping(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return "", false
	}

	if rv.Len() == 0 {
		return noDataSentence, true
	}

	keys := make([]string, 0, rv.Len())
	byKey := make(map[string]string, rv.Len())
	for _, k := range rv.MapKeys() {
		key := fmt.Sprint(k.Interface())
		keys = append(keys, key)
		byKey[key] = fmt.Sprint(rv.MapIndex(k).Interface())
	}
	sort.Strings(keys)

	var sb strings.Builder
	shown := len(keys)
	if shown > maxListEntries {
		shown = maxListEntries
	}
	for _, key := range keys[:shown] {
		fmt.Fprintf(&sb, "- %s: %s\n", key, byKey[key])
	}
	if len(keys) > maxListEntries {
		fmt.Fprintf(&sb, "... and %d more entries", len(keys)-maxListEntries)
	}

	return strings.TrimSpace(sb.String()), true
}

func formatFallback(v any) string {
	s := strings.TrimSpace(fmt.Sprint(v))

	if agentWrapperPattern.MatchString(s) {
		return successSentence
	}

	return s
}

func degradedText(v any) string {
	raw := safeString(v)
	return fmt.Sprintf("Task completed. Raw result: %s", utils.Truncate(raw, rawPreviewLen))
}

// safeString stringifies a value whose String or Error method may itself
// misbehave.
func safeString(v any) (s string) {
	defer func() {
		if recover() != nil {
			s = fmt.Sprintf("<unprintable %T>", v)
		}
	}()
	return fmt.Sprint(v)
}
