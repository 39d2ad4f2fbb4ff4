package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// ExportInput names a payload to persist as a JSON artifact.
type ExportInput struct {
	Name    string                 `json:"name,omitempty"`
	Payload map[string]interface{} `json:"payload"`
}

// ExportResult reports where the artifact was written.
type ExportResult struct {
	URL string `json:"url"`
}

// Exporter writes tool artifacts to any afs-addressable destination.
type Exporter struct {
	fs      afs.Service
	baseURL string
}

// NewExporter creates an exporter rooted at baseURL.
func NewExporter(baseURL string) *Exporter {
	return &Exporter{fs: afs.New(), baseURL: baseURL}
}

// Call persists the payload; unnamed artifacts get a generated identifier.
func (e *Exporter) Call(ctx context.Context, input *ExportInput) (interface{}, error) {
	name := input.Name
	if name == "" {
		name = uuid.New().String() + ".json"
	}
	data, err := json.Marshal(input.Payload)
	if err != nil {
		return nil, err
	}
	destURL := url.Join(e.baseURL, name)
	if err := e.fs.Upload(ctx, destURL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to export %v: %w", destURL, err)
	}
	return &ExportResult{URL: destURL}, nil
}
