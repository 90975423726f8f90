package project

import (
	_ "embed"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

//go:embed templates/get_started.ipynb
var notebookTemplate []byte

// RenderNotebook returns the built-in starter notebook with a fresh id on
// every cell (nbformat 4.5).
func RenderNotebook() ([]byte, error) {
	var nb map[string]any
	if err := json.Unmarshal(notebookTemplate, &nb); err != nil {
		return nil, errors.Wrap(err, "embedded notebook template is invalid")
	}

	cells, _ := nb["cells"].([]any)
	for _, c := range cells {
		if cell, ok := c.(map[string]any); ok {
			cell["id"] = uuid.NewString()
		}
	}

	out, err := json.MarshalIndent(nb, "", " ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to render notebook")
	}
	return append(out, '\n'), nil
}
