package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedRecord marks a record whose text field is missing or not a string.
// Such records are evaluated as empty text and never abort a batch.
var ErrMalformedRecord = errors.New("malformed record")

// Record is a single trivia question as loaded from the dataset
type Record struct {
	ID        string                     // Position in the input file (0-based, as string)
	Fields    map[string]json.RawMessage // Original JSON fields, preserved for export
	Text      string                     // Cleaned question text (HTML and quotes stripped)
	Malformed bool                       // Text field missing or not a JSON string
}

// NewRecord builds a record from raw JSON fields, extracting textField as its text.
// A missing or non-string text field yields an empty, malformed record together
// with an error wrapping ErrMalformedRecord.
func NewRecord(id string, fields map[string]json.RawMessage, textField string) (*Record, error) {
	r := &Record{ID: id, Fields: fields}

	raw, ok := fields[textField]
	if !ok {
		r.Malformed = true
		return r, fmt.Errorf("record %s: field %q missing: %w", id, textField, ErrMalformedRecord)
	}

	var text *string
	if err := json.Unmarshal(raw, &text); err != nil || text == nil {
		r.Malformed = true
		return r, fmt.Errorf("record %s: field %q is not text: %w", id, textField, ErrMalformedRecord)
	}

	r.Text = *text
	return r, nil
}

// Field returns a field of the original record as text: the string value, the
// raw JSON for other types, or "" if absent
func (r *Record) Field(name string) string {
	raw, ok := r.Fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}
