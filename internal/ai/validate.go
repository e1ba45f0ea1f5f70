package ai

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValidateRecordArray parses sanitized model output as a JSON array of objects
// and asserts that every element carries a non-empty value for each required
// field. It returns a ParseError for syntactically invalid JSON and a
// SchemaError when the shape or required fields are violated; the SchemaError
// names the element index and the sorted missing field names.
func ValidateRecordArray(text string, requiredFields []string, noun string) ([]map[string]any, error) {
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &ParseError{Err: err}
	}

	records, ok := raw.([]any)
	if !ok {
		return nil, &SchemaError{Message: "model output must be a JSON array"}
	}

	out := make([]map[string]any, 0, len(records))
	for i, rec := range records {
		obj, ok := rec.(map[string]any)
		if !ok {
			return nil, &SchemaError{Index: i, Message: fmt.Sprintf("%s at index %d is not an object", noun, i)}
		}

		var missing []string
		for _, field := range requiredFields {
			if isMissing(obj[field]) {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return nil, &SchemaError{
				Index:   i,
				Missing: missing,
				Message: fmt.Sprintf("%s at index %d missing fields: %v", noun, i, missing),
			}
		}
		out = append(out, obj)
	}
	return out, nil
}

// A required field is missing when the key is absent or its value is an
// empty/whitespace string.
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

var cardRequiredFields = []string{"id", "title", "description"}

// ValidateCards validates sanitized model output against the Card contract.
func ValidateCards(text string) ([]Card, error) {
	records, err := ValidateRecordArray(text, cardRequiredFields, "card")
	if err != nil {
		return nil, err
	}

	cards := make([]Card, 0, len(records))
	for _, rec := range records {
		cards = append(cards, Card{
			ID:          stringField(rec, "id"),
			Title:       stringField(rec, "title"),
			Description: stringField(rec, "description"),
			Rationale:   stringField(rec, "rationale"),
			Category:    stringField(rec, "category"),
		})
	}
	return cards, nil
}

var taskRequiredFields = []string{"id", "label", "priority", "category"}

// ValidateTasks validates sanitized model output against the ClinicianTask
// contract, defaults an unset source and coerces unrecognized categories to
// Follow-up (a recovery policy, not a validation failure).
func ValidateTasks(text string) ([]ClinicianTask, error) {
	records, err := ValidateRecordArray(text, taskRequiredFields, "task")
	if err != nil {
		return nil, err
	}

	tasks := make([]ClinicianTask, 0, len(records))
	for _, rec := range records {
		task := ClinicianTask{
			ID:       stringField(rec, "id"),
			Label:    stringField(rec, "label"),
			Priority: stringField(rec, "priority"),
			Source:   stringField(rec, "source"),
			Category: NormalizeTaskCategory(stringField(rec, "category")),
		}
		if task.Source == "" {
			task.Source = DefaultTaskSource
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// NormalizeTaskCategory trims the category and checks it against the closed
// set; anything else becomes Follow-up.
func NormalizeTaskCategory(category string) TaskCategory {
	switch cat := TaskCategory(strings.TrimSpace(category)); cat {
	case TaskFollowUp, TaskMedication, TaskScreening, TaskRoutine:
		return cat
	default:
		return TaskFollowUp
	}
}

// NormalizeAnswer maps a raw card answer to one of "Yes", "No",
// "Not Provided" or the original value trimmed.
func NormalizeAnswer(answer any) string {
	switch v := answer.(type) {
	case nil:
		return "Not Provided"
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case string:
		trimmed := strings.TrimSpace(v)
		switch strings.ToLower(trimmed) {
		case "":
			return "Not Provided"
		case "yes", "y", "true", "1":
			return "Yes"
		case "no", "n", "false", "0":
			return "No"
		default:
			return trimmed
		}
	case float64:
		return NormalizeAnswer(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return NormalizeAnswer(fmt.Sprint(v))
	}
}

func stringField(rec map[string]any, key string) string {
	v, ok := rec[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
