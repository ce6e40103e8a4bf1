package render

import (
	"encoding/json"

	"github.com/gduarte/massing/pkg/errors"
	"github.com/gduarte/massing/pkg/massing"
)

// jsonDocument is the top-level shape of the JSON artifact.
type jsonDocument struct {
	Records  []massing.Record   `json:"records"`
	Stats    massing.BatchStats `json:"stats"`
	Warnings []string           `json:"warnings,omitempty"`
	Dropped  int                `json:"dropped_circulation,omitempty"`
}

func renderJSON(in Input) ([]byte, error) {
	doc := jsonDocument{
		Records: in.Records,
		Stats:   in.Stats,
		Dropped: in.Dropped,
	}
	for _, w := range in.Warnings {
		doc.Warnings = append(doc.Warnings, w.String())
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode JSON artifact")
	}
	return append(data, '\n'), nil
}
