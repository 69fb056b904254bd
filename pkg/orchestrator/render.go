package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONRenderer is the built-in rendering handoff target: it writes the
// synthesized document as a JSON artifact that the report back-ends
// (spreadsheet, slide, and document writers) consume out of process.
// Renderers receive only synthesized_data, never lower-level state.
type JSONRenderer struct {
	dir string
}

// NewJSONRenderer creates a renderer writing under dir/{job_id}/.
func NewJSONRenderer(dir string) *JSONRenderer {
	return &JSONRenderer{dir: dir}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, jobID string, doc map[string]any) ([]string, error) {
	jobDir := filepath.Join(r.dir, jobID)
	if err := os.MkdirAll(jobDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact directory: %w", err)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling synthesized document: %w", err)
	}

	path := filepath.Join(jobDir, "synthesized_data.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return nil, fmt.Errorf("writing artifact: %w", err)
	}
	return []string{path}, nil
}
