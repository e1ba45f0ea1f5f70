package ai

import (
	"fmt"
	"strings"
)

// MissingDataPlaceholder is rendered in place of an empty or absent fragment
// so the model cannot mistake "no data" for "no instruction".
const MissingDataPlaceholder = "Data Not Provided"

// Fragment is one named block of source text interpolated into a user prompt.
type Fragment struct {
	Name string
	Text string
}

// renderFragment renders a named source block, substituting the placeholder
// for empty text.
func renderFragment(f Fragment) string {
	text := strings.TrimSpace(f.Text)
	if text == "" {
		text = MissingDataPlaceholder
	}
	return fmt.Sprintf("%s:\n\"\"\"\n%s\n\"\"\"", f.Name, text)
}

// renderFragments joins a variable set of named source blocks.
func renderFragments(fragments []Fragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		parts = append(parts, renderFragment(f))
	}
	return strings.Join(parts, "\n\n")
}

func promptMessages(system, user string) []Message {
	return []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
}

const cardSystemPrompt = "You are a clinical assistant. " +
	"Return ONLY valid JSON array. No markdown, no extra text. " +
	"Never fabricate facts not present in the input."

// buildCardPrompt assembles the follow-up card generation prompt from one or
// more source fragments (EMR snapshot, optionally transcript-derived notes).
func buildCardPrompt(fragments []Fragment) []Message {
	user := fmt.Sprintf(`Given the patient sources below, create 2-7 follow-up after-care cards.
Each card should be a yes/no question.

Return JSON array with objects containing:
- id (string)
- title (string)
- description (string)
- rationale (string)
- category (string, one of: "medication", "symptom", "red_flag", "recovery", "follow_up")

When the sources conflict, prefer the safer, more cautious card.

%s`, renderFragments(fragments))
	return promptMessages(cardSystemPrompt, user)
}

const taskSystemPrompt = "You are a clinical task assistant for nurses. " +
	"Output MUST be a valid JSON array only. No markdown, no code fences. " +
	"Generate actionable clinician tasks from the patient context."

func buildTaskPrompt(context string) []Message {
	user := fmt.Sprintf(`Given this patient context:

%s

Generate clinician tasks for the nurse. Return a JSON array of objects with:
- id: string (e.g. "task-f1", "task-m1", "task-s1", "task-r1")
- label: string (short actionable task, e.g. "Discuss headache management at next visit")
- priority: string ("high", "medium", or "low")
- source: string (e.g. "AI-generated")
- category: string (one of: "Follow-up", "Medication", "Screening", "Routine")

Requirements:
- Include 1-3 tasks total across Follow-up, Medication, Screening, Routine as relevant.
- Only include categories that make sense for this patient (e.g. if no meds mentioned, skip Medication).
- Prioritize high-risk and time-sensitive items.
- Keep labels concise and actionable.
- Do not include Escalation (those come from agreed items separately).`, context)
	return promptMessages(taskSystemPrompt, user)
}

const reportSystemPrompt = "You are a clinical diagnostic/documentation assistant for a clinician. " +
	"Write accurate, structured, clinician-facing reports for charting and handoff. " +
	"Do not invent patient facts, labs, vitals, medications, or timelines not present in the input. " +
	"If data is missing, explicitly state 'Data Not Provided'. " +
	"Use concise medical language and include safety-focused recommendations."

func buildReportPrompt(emrText, cardLines string) []Message {
	user := fmt.Sprintf(`Task:
Create a detailed clinician-facing follow-up report from the EMR and selected follow-up cards.

%s

Selected follow-up cards:
%s

Output requirements:
1) Chief Concern / Context
- 2-4 sentences summarizing reason for follow-up and current phase of care.

2) Clinical Summary
- Problem-oriented summary of relevant symptoms, progression, and treatment response.
- Include pertinent positives and negatives from the EMR.

3) Follow-up Card Synthesis
- For each selected card, include:
    - Card ID and Title
    - The patient's answer and why it matters clinically
    - Potential implication if positive vs negative

4) Risk & Red Flags
- List immediate warning signs that should trigger urgent evaluation.
- Prioritize by potential severity.

5) Assessment
- Brief clinical impression integrating EMR + selected cards.
- Note uncertainty where information is incomplete.

6) Plan / Recommendations
- Clear next-step actions for clinician handoff/charting.
- Include monitoring suggestions and follow-up timing language.

Formatting rules:
- Use section headers exactly as above.
- Use bullet points under sections 3, 4, and 6.
- Keep total length between 350 and 550 words.
- Professional, neutral tone; no markdown code fences.
- Do not mention being an AI.`, renderFragment(Fragment{Name: "EMR", Text: emrText}), cardLines)
	return promptMessages(reportSystemPrompt, user)
}

const summarySystemPrompt = "You are a clinical documentation assistant. Write a concise progress summary for a clinician. " +
	"Use the EMR and agreed items (topics the patient/clinician flagged for attention). " +
	"Be professional, factual, and highlight what matters most for follow-up. " +
	"Do not invent information. If data is sparse, say so. " +
	"Output 2-4 short paragraphs. No markdown, no section headers."

func buildSummaryPrompt(emrBlock, agreedBlock string) []Message {
	user := fmt.Sprintf(`%s

%s

Write a brief progress summary (2-4 paragraphs) that a clinician can quickly scan. Focus on:
- Current status and key concerns
- What to watch based on agreed items
- Any gaps or areas needing follow-up`,
		renderFragment(Fragment{Name: "EMR / Clinical context", Text: emrBlock}),
		renderFragment(Fragment{Name: "Items agreed as needing attention", Text: agreedBlock}))
	return promptMessages(summarySystemPrompt, user)
}

const transcriptSystemPrompt = "You are a clinical documentation assistant. Given a transcript of a clinician-patient conversation, " +
	"split it into utterances and label each as 'clinician' or 'client'. " +
	"Clinicians typically ask questions, give instructions, or provide medical information. " +
	"Clients (patients) typically describe symptoms, side effects, answer questions, and report how they feel. " +
	"Output ONLY valid JSON. No markdown, no code fences, no commentary."

func buildTranscriptPrompt(rawTranscript string) []Message {
	user := fmt.Sprintf(`%s

Task:
1. Split into logical utterances (sentences or short exchanges).
2. For each utterance, decide: "clinician" or "client".
3. Return a JSON object with:
   - utterances: array of {"speaker": "clinician"|"client", "text": "..."}
   - clinician_questions: array of strings (key questions the clinician asked)
   - client_responses: array of strings (symptoms, side effects, patient answers)
   - summary: 1-2 sentence summary of the conversation

Rules:
- Preserve the original wording; do not paraphrase.
- If unsure, use context: questions -> clinician; symptoms/answers -> client.
- Keep utterances in chronological order.`, renderFragment(Fragment{Name: "Raw transcript", Text: rawTranscript}))
	return promptMessages(transcriptSystemPrompt, user)
}

const emrNotesSystemPrompt = "You are a clinical documentation assistant. Create structured EMR (Electronic Medical Record) " +
	"visit notes from a clinician-patient conversation. Use standard medical terminology. " +
	"Do not invent facts not present in the transcript. If information is missing, state 'Not documented'. " +
	"Output professional, concise notes suitable for charting. Do not use markdown code fences."

func buildEmrNotesPrompt(dialogue string, clinicianQuestions, clientResponses []string, summary string) []Message {
	user := fmt.Sprintf(`Transcript (clinician vs client labeled):
%s

Clinician questions asked: %s
Client-reported symptoms/responses: %s
Brief summary: %s

Create EMR visit notes with these sections:

1) Chief Complaint
   - 1-2 sentences on reason for visit.

2) History of Present Illness (HPI)
   - Relevant symptoms, onset, duration, exacerbating/relieving factors from client.
   - Pertinent positives and negatives.

3) Review of Systems (pertinent only)
   - Only include systems relevant to this visit.

4) Assessment / Clinical Impression
   - Working diagnosis or impressions based on the conversation.

5) Plan
   - Recommended next steps, medications, follow-up, patient education.

Rules:
- Use section headers exactly as above.
- Bullet points where appropriate.
- 250-400 words total.
- Professional tone, no AI disclaimers.`,
		dialogue,
		strings.Join(clinicianQuestions, "; "),
		strings.Join(clientResponses, "; "),
		summary)
	return promptMessages(emrNotesSystemPrompt, user)
}
