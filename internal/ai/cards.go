package ai

import (
	"context"
	"strings"
)

// Generator runs the AI orchestration tasks against an injected Completer.
type Generator struct {
	completer Completer
}

// NewGenerator creates a Generator backed by the given model gateway.
func NewGenerator(completer Completer) *Generator {
	return &Generator{completer: completer}
}

// GenerateCards creates 2-7 yes/no follow-up cards from an EMR snapshot and,
// optionally, transcript-derived notes from the most recent visit. EMR text is
// required; when transcript text is supplied it must be non-empty too.
func (g *Generator) GenerateCards(ctx context.Context, emrText, transcriptText string, includeTranscript bool) ([]Card, error) {
	if strings.TrimSpace(emrText) == "" {
		return nil, &InputError{Message: "emr_text is required"}
	}

	fragments := []Fragment{{Name: "EMR", Text: emrText}}
	if includeTranscript {
		if strings.TrimSpace(transcriptText) == "" {
			return nil, &InputError{Message: "transcript_text is required"}
		}
		fragments = append(fragments, Fragment{Name: "Visit transcript notes", Text: transcriptText})
	}

	content, err := g.completer.Complete(ctx, buildCardPrompt(fragments), 0)
	if err != nil {
		return nil, err
	}

	return ValidateCards(Sanitize(content))
}
