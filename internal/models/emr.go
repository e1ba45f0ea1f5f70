package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// StringList stores a JSON-encoded list of strings in a single text column.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as an empty array so
// downstream rendering never sees null.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// StringMap stores a JSON-encoded string-to-string mapping in a single text column.
type StringMap map[string]string

// Value implements driver.Valuer.
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		m = StringMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = StringMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into StringMap", value)
	}
}

// EmrRecord represents a patient's EMR snapshot
type EmrRecord struct {
	BaseModel
	UserID      string     `gorm:"size:36;uniqueIndex" json:"userId"`
	LastVisit   *time.Time `json:"lastVisit,omitempty"`
	Conditions  StringList `gorm:"type:text" json:"conditions"`
	Medications StringList `gorm:"type:text" json:"medications"`
	Procedures  StringList `gorm:"type:text" json:"procedures"`
	Vitals      StringMap  `gorm:"type:text" json:"vitals"`
	VisitNotes  string     `gorm:"type:text" json:"visitNotes,omitempty"`
	Alerts      StringList `gorm:"type:text" json:"alerts"`
}

// Normalize replaces absent collection fields with empty ones so API responses
// and prompt rendering never carry null.
func (e *EmrRecord) Normalize() {
	if e.Conditions == nil {
		e.Conditions = StringList{}
	}
	if e.Medications == nil {
		e.Medications = StringList{}
	}
	if e.Procedures == nil {
		e.Procedures = StringList{}
	}
	if e.Vitals == nil {
		e.Vitals = StringMap{}
	}
	if e.Alerts == nil {
		e.Alerts = StringList{}
	}
}

// ContextText renders the record as the plain-text EMR block fed to the AI
// orchestrators.
func (e *EmrRecord) ContextText() string {
	e.Normalize()

	var b strings.Builder
	if e.LastVisit != nil {
		fmt.Fprintf(&b, "Last visit: %s\n", e.LastVisit.Format("2006-01-02"))
	}
	writeSection(&b, "Conditions", e.Conditions)
	writeSection(&b, "Medications", e.Medications)
	writeSection(&b, "Procedures", e.Procedures)

	if len(e.Vitals) > 0 {
		b.WriteString("Vitals:\n")
		keys := make([]string, 0, len(e.Vitals))
		for k := range e.Vitals {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", k, e.Vitals[k])
		}
	}
	writeSection(&b, "Alerts", e.Alerts)

	if strings.TrimSpace(e.VisitNotes) != "" {
		fmt.Fprintf(&b, "Visit notes:\n%s\n", strings.TrimSpace(e.VisitNotes))
	}
	return strings.TrimSpace(b.String())
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
