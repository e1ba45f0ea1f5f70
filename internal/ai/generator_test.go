package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter returns canned responses in order and records every call.
type fakeCompleter struct {
	responses []string
	err       error

	calls         int
	lastMessages  []Message
	lastMaxTokens int
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	f.calls++
	f.lastMessages = messages
	f.lastMaxTokens = maxTokens
	if f.err != nil {
		return "", f.err
	}
	response := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return response, nil
}

func userPrompt(t *testing.T, messages []Message) string {
	t.Helper()
	require.Len(t, messages, 2)
	require.Equal(t, "system", messages[0].Role)
	require.Equal(t, "user", messages[1].Role)
	return messages[1].Content
}

func TestGenerateCards(t *testing.T) {
	t.Run("rejects empty EMR text without a model call", func(t *testing.T) {
		fake := &fakeCompleter{}
		_, err := NewGenerator(fake).GenerateCards(context.Background(), "   ", "", false)

		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Zero(t, fake.calls)
	})

	t.Run("rejects empty transcript text when requested", func(t *testing.T) {
		fake := &fakeCompleter{}
		_, err := NewGenerator(fake).GenerateCards(context.Background(), "emr", "", true)

		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Zero(t, fake.calls)
	})

	t.Run("parses fenced model output", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{
			"```json\n[{\"id\":\"q1\",\"title\":\"Any chest pain?\",\"description\":\"Screens for red flags.\"}]\n```",
		}}
		cards, err := NewGenerator(fake).GenerateCards(context.Background(), "Conditions: hypertension", "", false)

		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "q1", cards[0].ID)
		assert.Equal(t, 1, fake.calls)
		assert.Equal(t, 0, fake.lastMaxTokens)
	})

	t.Run("interpolates both sources into the prompt", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{`[{"id":"q1","title":"t","description":"d"}]`}}
		_, err := NewGenerator(fake).GenerateCards(context.Background(), "EMR body", "transcript body", true)

		require.NoError(t, err)
		prompt := userPrompt(t, fake.lastMessages)
		assert.Contains(t, prompt, "EMR body")
		assert.Contains(t, prompt, "transcript body")
		assert.Contains(t, prompt, "prefer the safer")
	})

	t.Run("propagates gateway failure", func(t *testing.T) {
		fake := &fakeCompleter{err: &GatewayError{Message: "model endpoint returned status 500"}}
		_, err := NewGenerator(fake).GenerateCards(context.Background(), "emr", "", false)

		var gatewayErr *GatewayError
		assert.ErrorAs(t, err, &gatewayErr)
	})
}

func TestGenerateTasks(t *testing.T) {
	t.Run("empty context short-circuits without a model call", func(t *testing.T) {
		fake := &fakeCompleter{}
		tasks, err := NewGenerator(fake).GenerateTasks(context.Background(), "  ", nil)

		require.NoError(t, err)
		assert.Empty(t, tasks)
		assert.NotNil(t, tasks)
		assert.Zero(t, fake.calls)
	})

	t.Run("normalizes categories from model output", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{
			`[{"id":"task-1","label":"Order labs","priority":"medium","category":"Diagnostics"}]`,
		}}
		tasks, err := NewGenerator(fake).GenerateTasks(context.Background(), "Patient on lisinopril", nil)

		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, TaskFollowUp, tasks[0].Category)
		assert.Equal(t, DefaultTaskSource, tasks[0].Source)
		assert.Equal(t, taskMaxTokens, fake.lastMaxTokens)
	})

	t.Run("renders agreed items into the prompt", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{`[]`}}
		_, err := NewGenerator(fake).GenerateTasks(context.Background(), "", []AgreedItem{
			{Title: "Dizziness", Detail: "Worse on standing", Severity: "medium"},
		})

		require.NoError(t, err)
		prompt := userPrompt(t, fake.lastMessages)
		assert.Contains(t, prompt, "Dizziness: Worse on standing")
		assert.Contains(t, prompt, "Agreed follow-up items")
	})
}

func TestGenerateReport(t *testing.T) {
	selected := []AnsweredCard{
		{Card: Card{ID: "q1", Title: "Taking medication?", Description: "Adherence check"}, Answer: true},
		{Card: Card{ID: "q2", Title: "Any dizziness?", Description: "Side effect check"}, Answer: nil},
	}

	t.Run("requires EMR text", func(t *testing.T) {
		fake := &fakeCompleter{}
		_, err := NewGenerator(fake).GenerateReport(context.Background(), "", selected)

		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Zero(t, fake.calls)
	})

	t.Run("requires selected cards", func(t *testing.T) {
		fake := &fakeCompleter{}
		_, err := NewGenerator(fake).GenerateReport(context.Background(), "emr", nil)

		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Zero(t, fake.calls)
	})

	t.Run("renders normalized answers into the prompt", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{"Chief Concern / Context\n..."}}
		report, err := NewGenerator(fake).GenerateReport(context.Background(), "Conditions: hypertension", selected)

		require.NoError(t, err)
		assert.NotEmpty(t, report)
		prompt := userPrompt(t, fake.lastMessages)
		assert.Contains(t, prompt, "[q1] Taking medication?: Adherence check (Answer: Yes)")
		assert.Contains(t, prompt, "(Answer: Not Provided)")
	})

	t.Run("empty model output is a gateway failure", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{"   "}}
		_, err := NewGenerator(fake).GenerateReport(context.Background(), "emr", selected)

		var gatewayErr *GatewayError
		assert.ErrorAs(t, err, &gatewayErr)
	})
}

func TestGenerateSummary(t *testing.T) {
	t.Run("no context returns the fallback without a model call", func(t *testing.T) {
		fake := &fakeCompleter{}
		summary, err := NewGenerator(fake).GenerateSummary(context.Background(), "", nil)

		require.NoError(t, err)
		assert.Equal(t, FallbackSummary, summary)
		assert.Zero(t, fake.calls)
	})

	t.Run("agreed items only still generates", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{"Patient reports improving headaches."}}
		summary, err := NewGenerator(fake).GenerateSummary(context.Background(), "", []AgreedItem{
			{Title: "Headache", Detail: "Recurring", Severity: ""},
		})

		require.NoError(t, err)
		assert.Equal(t, "Patient reports improving headaches.", summary)
		assert.Equal(t, summaryMaxTokens, fake.lastMaxTokens)

		prompt := userPrompt(t, fake.lastMessages)
		assert.Contains(t, prompt, "No EMR on file.")
		assert.Contains(t, prompt, "1. Headache (low): Recurring")
	})
}

const labeledTranscriptJSON = `{
	"utterances": [
		{"speaker": "clinician", "text": "How are you feeling?"},
		{"speaker": "client", "text": "Better, but tired."}
	],
	"clinician_questions": ["How are you feeling?"],
	"client_responses": ["Better, but tired."],
	"summary": "Follow-up on recovery; patient improving but fatigued."
}`

func TestProcessTranscript(t *testing.T) {
	t.Run("rejects an empty transcript without a model call", func(t *testing.T) {
		fake := &fakeCompleter{}
		_, err := NewGenerator(fake).ProcessTranscript(context.Background(), " ")

		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Zero(t, fake.calls)
	})

	t.Run("labels speakers and preserves order", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{labeledTranscriptJSON}}
		processed, err := NewGenerator(fake).ProcessTranscript(context.Background(),
			"Doctor: How are you feeling? Patient: Better, but tired.")

		require.NoError(t, err)
		require.Len(t, processed.Utterances, 2)
		assert.Equal(t, SpeakerClinician, processed.Utterances[0].Speaker)
		assert.Equal(t, "How are you feeling?", processed.Utterances[0].Text)
		assert.Equal(t, SpeakerClient, processed.Utterances[1].Speaker)
		assert.Equal(t, "Better, but tired.", processed.Utterances[1].Text)
		assert.Equal(t, transcriptMaxTokens, fake.lastMaxTokens)
	})

	t.Run("missing keys default to empty", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{`{"summary": "short chat"}`}}
		processed, err := NewGenerator(fake).ProcessTranscript(context.Background(), "hello there")

		require.NoError(t, err)
		assert.NotNil(t, processed.Utterances)
		assert.Empty(t, processed.Utterances)
		assert.NotNil(t, processed.ClinicianQuestions)
		assert.NotNil(t, processed.ClientResponses)
		assert.Equal(t, "short chat", processed.Summary)
	})

	t.Run("invalid JSON is a ParseError", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{"sorry, I cannot do that"}}
		_, err := NewGenerator(fake).ProcessTranscript(context.Background(), "hello")

		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("array output is a SchemaError", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{`[{"speaker":"clinician","text":"hi"}]`}}
		_, err := NewGenerator(fake).ProcessTranscript(context.Background(), "hello")

		var schemaErr *SchemaError
		assert.ErrorAs(t, err, &schemaErr)
	})
}

func TestGenerateEmrNotes(t *testing.T) {
	t.Run("renders labeled dialogue into the prompt", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{"1) Chief Complaint\n- Fatigue on recovery."}}
		processed := &ProcessedTranscript{
			Utterances: []Utterance{
				{Speaker: SpeakerClinician, Text: "How are you feeling?"},
				{Speaker: SpeakerClient, Text: "Better, but tired."},
			},
			Summary: "Recovery follow-up.",
		}
		notes, err := NewGenerator(fake).GenerateEmrNotes(context.Background(), processed)

		require.NoError(t, err)
		assert.NotEmpty(t, notes)
		assert.Equal(t, emrNotesMaxTokens, fake.lastMaxTokens)

		prompt := userPrompt(t, fake.lastMessages)
		assert.Contains(t, prompt, "[CLINICIAN] How are you feeling?")
		assert.Contains(t, prompt, "[CLIENT] Better, but tired.")
	})

	t.Run("nil input defaults to empty rather than failing", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{"1) Chief Complaint\n- Not documented."}}
		notes, err := NewGenerator(fake).GenerateEmrNotes(context.Background(), nil)

		require.NoError(t, err)
		assert.NotEmpty(t, notes)
		assert.Contains(t, userPrompt(t, fake.lastMessages), "No dialogue.")
	})
}

func TestRunTranscriptPipeline(t *testing.T) {
	t.Run("labels then synthesizes", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{labeledTranscriptJSON, "1) Chief Complaint\n- Fatigue."}}
		result, err := NewGenerator(fake).RunTranscriptPipeline(context.Background(),
			"Doctor: How are you feeling? Patient: Better, but tired.")

		require.NoError(t, err)
		assert.Equal(t, 2, fake.calls)
		require.NotNil(t, result.Processed)
		assert.Len(t, result.Processed.Utterances, 2)
		assert.Contains(t, result.EmrNotes, "Chief Complaint")
	})

	t.Run("labeling failure aborts before synthesis", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{"not json at all"}}
		result, err := NewGenerator(fake).RunTranscriptPipeline(context.Background(), "hello")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, 1, fake.calls)
	})
}
