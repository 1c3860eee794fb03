// Package dataset reads question records from JSON and writes sampled exports
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/ppiankov/triviaflag/internal/clean"
	"github.com/ppiankov/triviaflag/internal/model"
)

// LoadResult is the outcome of loading a dataset file
type LoadResult struct {
	Records   []*model.Record
	Malformed []error // One entry per record whose text field was unusable
}

// Load reads a JSON array of objects and builds one cleaned record per object.
// Malformed records are kept (with empty text) and reported in Malformed.
func Load(path string, textField string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Elements are decoded one by one so a single bad element cannot fail the file
	var raw []json.RawMessage
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}

	return FromRaw(raw, textField), nil
}

// FromRaw builds cleaned records from the elements of a JSON array.
// Elements that are not objects become malformed records.
func FromRaw(raw []json.RawMessage, textField string) *LoadResult {
	res := &LoadResult{Records: make([]*model.Record, 0, len(raw))}
	for i, elem := range raw {
		id := strconv.Itoa(i)

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
			res.Records = append(res.Records, &model.Record{
				ID:        id,
				Fields:    map[string]json.RawMessage{},
				Malformed: true,
			})
			res.Malformed = append(res.Malformed, fmt.Errorf("record %s: not a JSON object: %w", id, model.ErrMalformedRecord))
			continue
		}

		rec, err := model.NewRecord(id, fields, textField)
		if err != nil {
			res.Malformed = append(res.Malformed, err)
		} else {
			rec.Text = clean.Text(rec.Text)
		}
		res.Records = append(res.Records, rec)
	}
	return res
}
