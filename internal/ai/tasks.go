package ai

import (
	"context"
	"fmt"
	"strings"
)

const taskMaxTokens = 800

// GenerateTasks creates clinician tasks (Follow-up, Medication, Screening,
// Routine) from EMR text and/or agreed follow-up items. With no context at
// all it short-circuits to an empty list without a model call.
func (g *Generator) GenerateTasks(ctx context.Context, emrText string, agreedItems []AgreedItem) ([]ClinicianTask, error) {
	var contextParts []string
	if trimmed := strings.TrimSpace(emrText); trimmed != "" {
		contextParts = append(contextParts, "Patient/EMR notes:\n"+trimmed)
	}
	if len(agreedItems) > 0 {
		lines := make([]string, 0, len(agreedItems))
		for _, item := range agreedItems {
			lines = append(lines, fmt.Sprintf("- %s: %s", item.Title, item.Detail))
		}
		contextParts = append(contextParts, "Agreed follow-up items:\n"+strings.Join(lines, "\n"))
	}

	if len(contextParts) == 0 {
		return []ClinicianTask{}, nil
	}

	content, err := g.completer.Complete(ctx, buildTaskPrompt(strings.Join(contextParts, "\n\n")), taskMaxTokens)
	if err != nil {
		return nil, err
	}

	return ValidateTasks(Sanitize(content))
}
