package report

import (
	"encoding/json"
	"io"
)

// JSONRenderer emits the report as indented JSON
type JSONRenderer struct {
	w io.Writer
}

func (r *JSONRenderer) Render(out Output) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")

	// Keep "releases" an array even when nothing matched
	if out.Rows == nil {
		out.Rows = []Row{}
	}
	return enc.Encode(out)
}
