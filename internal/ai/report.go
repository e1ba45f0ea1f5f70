package ai

import (
	"context"
	"fmt"
	"strings"
)

// GenerateReport writes a clinician-facing follow-up report from the EMR and
// the follow-up cards the patient answered. The 350-550 word target is a
// prompt-level instruction, not mechanically enforced.
func (g *Generator) GenerateReport(ctx context.Context, emrText string, selectedCards []AnsweredCard) (string, error) {
	if strings.TrimSpace(emrText) == "" {
		return "", &InputError{Message: "EMR text is required"}
	}
	if len(selectedCards) == 0 {
		return "", &InputError{Message: "selected cards are required"}
	}

	lines := make([]string, 0, len(selectedCards))
	for _, card := range selectedCards {
		id := card.ID
		if id == "" {
			id = "unknown"
		}
		title := card.Title
		if title == "" {
			title = "Untitled"
		}
		lines = append(lines, fmt.Sprintf("- [%s] %s: %s (Answer: %s)",
			id, title, card.Description, NormalizeAnswer(card.Answer)))
	}

	content, err := g.completer.Complete(ctx, buildReportPrompt(emrText, strings.Join(lines, "\n")), 0)
	if err != nil {
		return "", err
	}

	report := strings.TrimSpace(Sanitize(content))
	if report == "" {
		return "", &GatewayError{Message: "model returned an empty report"}
	}
	return report, nil
}
