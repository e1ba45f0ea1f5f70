package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	transcriptMaxTokens = 4000
	emrNotesMaxTokens   = 2000
)

// ensureDefaults replaces absent fields with empty values so all four keys
// are always present in output.
func (p *ProcessedTranscript) ensureDefaults() {
	if p.Utterances == nil {
		p.Utterances = []Utterance{}
	}
	if p.ClinicianQuestions == nil {
		p.ClinicianQuestions = []string{}
	}
	if p.ClientResponses == nil {
		p.ClientResponses = []string{}
	}
}

// ProcessTranscript labels each utterance of a raw, unlabeled conversation
// transcript as clinician or client and structures the dialogue.
func (g *Generator) ProcessTranscript(ctx context.Context, rawTranscript string) (*ProcessedTranscript, error) {
	if strings.TrimSpace(rawTranscript) == "" {
		return nil, &InputError{Message: "raw_transcript is required"}
	}

	content, err := g.completer.Complete(ctx, buildTranscriptPrompt(rawTranscript), transcriptMaxTokens)
	if err != nil {
		return nil, err
	}

	cleaned := Sanitize(content)

	var raw any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, ok := raw.(map[string]any); !ok {
		return nil, &SchemaError{Message: "model output must be a JSON object"}
	}

	var processed ProcessedTranscript
	if err := json.Unmarshal([]byte(cleaned), &processed); err != nil {
		return nil, &SchemaError{Message: fmt.Sprintf("transcript object has unexpected field types: %v", err)}
	}
	processed.ensureDefaults()

	return &processed, nil
}

// GenerateEmrNotes writes EMR visit notes from a labeled transcript. Missing
// sub-fields default to empty rather than failing.
func (g *Generator) GenerateEmrNotes(ctx context.Context, processed *ProcessedTranscript) (string, error) {
	if processed == nil {
		processed = &ProcessedTranscript{}
	}
	processed.ensureDefaults()

	var dialogueLines []string
	for _, u := range processed.Utterances {
		text := strings.TrimSpace(u.Text)
		if text == "" {
			continue
		}
		speaker := string(u.Speaker)
		if speaker == "" {
			speaker = "unknown"
		}
		dialogueLines = append(dialogueLines, fmt.Sprintf("[%s] %s", strings.ToUpper(speaker), text))
	}
	dialogue := "No dialogue."
	if len(dialogueLines) > 0 {
		dialogue = strings.Join(dialogueLines, "\n")
	}

	messages := buildEmrNotesPrompt(dialogue, processed.ClinicianQuestions, processed.ClientResponses, processed.Summary)
	content, err := g.completer.Complete(ctx, messages, emrNotesMaxTokens)
	if err != nil {
		return "", err
	}

	notes := strings.TrimSpace(Sanitize(content))
	if notes == "" {
		return "", &GatewayError{Message: "model returned empty visit notes"}
	}
	return notes, nil
}

// TranscriptPipelineResult holds the output of the full transcript pipeline.
type TranscriptPipelineResult struct {
	Processed *ProcessedTranscript `json:"processed"`
	EmrNotes  string               `json:"emrNotes"`
}

// RunTranscriptPipeline labels a raw transcript and synthesizes EMR visit
// notes from the labeled result in one call. A labeling failure aborts the
// pipeline before synthesis; no partial result is returned.
func (g *Generator) RunTranscriptPipeline(ctx context.Context, rawTranscript string) (*TranscriptPipelineResult, error) {
	processed, err := g.ProcessTranscript(ctx, rawTranscript)
	if err != nil {
		return nil, err
	}

	notes, err := g.GenerateEmrNotes(ctx, processed)
	if err != nil {
		return nil, err
	}

	return &TranscriptPipelineResult{Processed: processed, EmrNotes: notes}, nil
}
