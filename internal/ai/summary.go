package ai

import (
	"context"
	"fmt"
	"strings"
)

const summaryMaxTokens = 600

// FallbackSummary is returned without a model call when there is nothing to
// summarize yet.
const FallbackSummary = "No EMR or agreed items yet. Select a client and agree on cards to generate a progress summary."

// GenerateSummary writes a clinician-facing progress summary from EMR text
// and the items the patient/clinician agreed need attention.
func (g *Generator) GenerateSummary(ctx context.Context, emrText string, agreedItems []AgreedItem) (string, error) {
	emrBlock := strings.TrimSpace(emrText)
	if emrBlock == "" && len(agreedItems) == 0 {
		return FallbackSummary, nil
	}

	if emrBlock == "" {
		emrBlock = "No EMR on file."
	}

	var agreedBlock string
	if len(agreedItems) > 0 {
		lines := make([]string, 0, len(agreedItems))
		for i, item := range agreedItems {
			severity := item.Severity
			if severity == "" {
				severity = "low"
			}
			lines = append(lines, fmt.Sprintf("%d. %s (%s): %s", i+1, item.Title, severity, item.Detail))
		}
		agreedBlock = strings.Join(lines, "\n")
	}

	content, err := g.completer.Complete(ctx, buildSummaryPrompt(emrBlock, agreedBlock), summaryMaxTokens)
	if err != nil {
		return "", err
	}

	summary := strings.TrimSpace(Sanitize(content))
	if summary == "" {
		return "", &GatewayError{Message: "model returned an empty summary"}
	}
	return summary, nil
}
