package reconcile

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"

	"todo-sync/core/utils"
)

var (
	// ErrTitleRequired is returned when a direct creation has no title.
	ErrTitleRequired = errors.New("title is required")
	// ErrMissingExternalID is returned when a change carries no external record id.
	ErrMissingExternalID = errors.New("external record id is required")
	// ErrMalformedPayload is returned when a webhook body is not valid JSON.
	// Badly shaped but valid JSON is tolerated level by level.
	ErrMalformedPayload = errors.New("malformed webhook payload")
)

// UntitledPlaceholder replaces an absent or empty external title.
const UntitledPlaceholder = "Untitled"

// Fields is the field payload of an external record, keyed by column name.
type Fields map[string]any

// Text returns the field as a string. Absent, null, false, zero and NaN
// values are empty; other non-string values are stringified.
func (f Fields) Text(name string) string {
	v, ok := f[name]
	if !ok || isBlank(v) {
		return ""
	}
	return utils.ToString(v)
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0 || math.IsNaN(t)
	case string:
		return t == ""
	default:
		return false
	}
}

// Equals reports whether the field is a string exactly equal to want.
func (f Fields) Equals(name, want string) bool {
	s, ok := f[name].(string)
	return ok && s == want
}

// FieldMapping names the external columns the engine reads and writes.
// Configured through the airtable config section.
type FieldMapping struct {
	// Title is the column holding the record title.
	Title string
	// Description is the column holding the record description.
	Description string
	// Status is the column whose value decides completion.
	Status string
	// DoneValue is the exact status value meaning completed.
	DoneValue string
}

// DefaultFieldMapping returns the column names used by the stock Airtable base.
func DefaultFieldMapping() FieldMapping {
	return FieldMapping{
		Title:       "Name",
		Description: "Description",
		Status:      "Status",
		DoneValue:   "Done",
	}
}

// withDefaults fills empty names from DefaultFieldMapping.
func (m FieldMapping) withDefaults() FieldMapping {
	def := DefaultFieldMapping()
	if m.Title == "" {
		m.Title = def.Title
	}
	if m.Description == "" {
		m.Description = def.Description
	}
	if m.Status == "" {
		m.Status = def.Status
	}
	if m.DoneValue == "" {
		m.DoneValue = def.DoneValue
	}
	return m
}

// Outcome tells whether a reconciliation created or updated a record.
type Outcome int

const (
	OutcomeCreated Outcome = iota + 1
	OutcomeUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// Payload is a webhook delivery: external table id -> record changes.
type Payload struct {
	ChangedTablesByID map[string]TableChanges `json:"changedTablesById"`
}

// TableChanges holds the changed records of one external table.
type TableChanges struct {
	ChangedRecordsByID map[string]RecordChange `json:"changedRecordsById"`
}

// UnmarshalJSON accepts any JSON value. A missing or non-object
// changedTablesById is an empty batch.
func (p *Payload) UnmarshalJSON(data []byte) error {
	*p = Payload{}
	var raw struct {
		ChangedTablesByID json.RawMessage `json:"changedTablesById"`
	}
	if !isObject(data) || json.Unmarshal(data, &raw) != nil || !isObject(raw.ChangedTablesByID) {
		return nil
	}
	if err := json.Unmarshal(raw.ChangedTablesByID, &p.ChangedTablesByID); err != nil {
		p.ChangedTablesByID = nil
	}
	return nil
}

// UnmarshalJSON accepts any JSON value. A missing or non-object
// changedRecordsById has no changes.
func (t *TableChanges) UnmarshalJSON(data []byte) error {
	*t = TableChanges{}
	var raw struct {
		ChangedRecordsByID json.RawMessage `json:"changedRecordsById"`
	}
	if !isObject(data) || json.Unmarshal(data, &raw) != nil || !isObject(raw.ChangedRecordsByID) {
		return nil
	}
	if err := json.Unmarshal(raw.ChangedRecordsByID, &t.ChangedRecordsByID); err != nil {
		t.ChangedRecordsByID = nil
	}
	return nil
}

// RecordChange describes one changed record. A nil Current means the record
// was deleted at the source. Invalid is set when current is present but not
// an object.
type RecordChange struct {
	Current *RecordState `json:"current"`
	Invalid bool         `json:"-"`
}

// UnmarshalJSON accepts any JSON value; a non-object descriptor has no current state.
func (c *RecordChange) UnmarshalJSON(data []byte) error {
	*c = RecordChange{}
	var raw struct {
		Current json.RawMessage `json:"current"`
	}
	if !isObject(data) || json.Unmarshal(data, &raw) != nil || isNull(raw.Current) {
		return nil
	}
	if !isObject(raw.Current) {
		c.Invalid = true
		return nil
	}
	c.Current = &RecordState{}
	return json.Unmarshal(raw.Current, c.Current)
}

// RecordState is the state of an external record after the change.
type RecordState struct {
	Fields Fields `json:"fields"`
}

// UnmarshalJSON decodes fields, treating a non-object value as no fields.
func (r *RecordState) UnmarshalJSON(data []byte) error {
	*r = RecordState{}
	var raw struct {
		Fields json.RawMessage `json:"fields"`
	}
	if json.Unmarshal(data, &raw) != nil || !isObject(raw.Fields) {
		return nil
	}
	if err := json.Unmarshal(raw.Fields, &r.Fields); err != nil {
		r.Fields = nil
	}
	return nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// BatchResult aggregates the counters of one webhook batch.
type BatchResult struct {
	// Processed counts records written successfully.
	Processed int `json:"processedCount"`
	// Created counts records that did not exist before.
	Created int `json:"createdCount"`
	// Updated counts records that already existed.
	Updated int `json:"updatedCount"`
	// Failed counts records whose reconciliation returned an error.
	Failed int `json:"failedCount"`
	// Skipped counts deletions, which are ignored.
	Skipped int `json:"-"`
}
