package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmrRecordNormalize(t *testing.T) {
	record := EmrRecord{UserID: "u1"}
	record.Normalize()

	data, err := json.Marshal(record)
	require.NoError(t, err)

	// Collections must serialize as empty, never null.
	assert.NotContains(t, string(data), `"conditions":null`)
	assert.Contains(t, string(data), `"conditions":[]`)
	assert.Contains(t, string(data), `"vitals":{}`)
}

func TestEmrRecordContextText(t *testing.T) {
	lastVisit := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	record := EmrRecord{
		UserID:      "u1",
		LastVisit:   &lastVisit,
		Conditions:  StringList{"hypertension", "type 2 diabetes"},
		Medications: StringList{"lisinopril 10mg"},
		Vitals:      StringMap{"bp": "138/88", "hr": "72"},
		VisitNotes:  "Patient reports better sleep.",
		Alerts:      StringList{"penicillin allergy"},
	}

	text := record.ContextText()

	assert.Contains(t, text, "Last visit: 2025-05-20")
	assert.Contains(t, text, "Conditions:\n- hypertension\n- type 2 diabetes")
	assert.Contains(t, text, "Medications:\n- lisinopril 10mg")
	assert.Contains(t, text, "- bp: 138/88")
	assert.Contains(t, text, "Alerts:\n- penicillin allergy")
	assert.Contains(t, text, "Patient reports better sleep.")
	// Empty sections are omitted entirely.
	assert.NotContains(t, text, "Procedures")
}

func TestEmrRecordContextTextEmptyRecord(t *testing.T) {
	record := EmrRecord{UserID: "u1"}
	assert.Equal(t, "", record.ContextText())
}

func TestStringListScanValue(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, list)

	value, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(value.([]byte)))
}
