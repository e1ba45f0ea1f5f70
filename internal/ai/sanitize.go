package ai

import "strings"

// Sanitize strips a fenced-code wrapper (and an optional "json" language tag)
// that models sometimes add around otherwise-valid structured output. Input
// without a fence comes back trimmed but otherwise unchanged, so the function
// is idempotent.
func Sanitize(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) >= 2 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[1 : len(lines)-1]
	}
	if len(lines) > 0 && strings.EqualFold(strings.TrimSpace(lines[0]), "json") {
		lines = lines[1:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
