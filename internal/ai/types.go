package ai

// CardCategory is the closed vocabulary for follow-up card categories.
type CardCategory string

const (
	CategoryMedication CardCategory = "medication"
	CategorySymptom    CardCategory = "symptom"
	CategoryRedFlag    CardCategory = "red_flag"
	CategoryRecovery   CardCategory = "recovery"
	CategoryFollowUp   CardCategory = "follow_up"
)

// Card is a single yes/no follow-up question proposed to a patient.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Rationale   string `json:"rationale,omitempty"`
	Category    string `json:"category,omitempty"`
}

// TaskCategory is the closed vocabulary for clinician task categories.
// Anything outside it is coerced to TaskFollowUp during validation.
type TaskCategory string

const (
	TaskFollowUp   TaskCategory = "Follow-up"
	TaskMedication TaskCategory = "Medication"
	TaskScreening  TaskCategory = "Screening"
	TaskRoutine    TaskCategory = "Routine"
)

// ClinicianTask is an actionable item generated for clinical staff.
type ClinicianTask struct {
	ID       string       `json:"id"`
	Label    string       `json:"label"`
	Priority string       `json:"priority"`
	Source   string       `json:"source"`
	Category TaskCategory `json:"category"`
}

// DefaultTaskSource is filled in when the model omits a task's source.
const DefaultTaskSource = "AI-generated"

// AgreedItem is a follow-up concern the patient and clinician jointly flagged.
type AgreedItem struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Severity string `json:"severity"`
}

// Speaker labels one side of a clinician-patient conversation.
type Speaker string

const (
	SpeakerClinician Speaker = "clinician"
	SpeakerClient    Speaker = "client"
)

// Utterance is one labeled turn of a conversation, in chronological order.
type Utterance struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// ProcessedTranscript is the structured result of transcript labeling. All
// four fields are always present in output; absent model fields default to
// empty rather than null.
type ProcessedTranscript struct {
	Utterances         []Utterance `json:"utterances"`
	ClinicianQuestions []string    `json:"clinician_questions"`
	ClientResponses    []string    `json:"client_responses"`
	Summary            string      `json:"summary"`
}

// AnsweredCard is a selected follow-up card together with the patient's raw
// answer, as submitted for report generation.
type AnsweredCard struct {
	Card
	Answer any `json:"answer,omitempty"`
}
