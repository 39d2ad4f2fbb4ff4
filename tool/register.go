// Package tool provides the built-in toolset served in local dispatch mode:
// scene-level spectral indices, a subprocess-backed classifier and an
// artifact exporter. The heavyweight imagery computations stay in the
// backend; these tools mirror its surface for local runs.
package tool

import (
	"context"
	"os"

	"github.com/viant/gosh"
	"github.com/viant/gosh/runner/local"

	"github.com/axion-orbital/planetary-bridge/registry"
)

// Options configure the local toolset.
type Options struct {
	ClassifyScript string
	ExportBaseURL  string
}

// Option mutates toolset options.
type Option func(o *Options)

// WithClassifyScript enables the classify_scene tool over the given script.
func WithClassifyScript(script string) Option {
	return func(o *Options) {
		o.ClassifyScript = script
	}
}

// WithExportBaseURL overrides where export_result writes (default: cwd).
func WithExportBaseURL(baseURL string) Option {
	return func(o *Options) {
		o.ExportBaseURL = baseURL
	}
}

// RegisterAll registers the built-in tools in their canonical order.
func RegisterAll(ctx context.Context, r *registry.Registry, options ...Option) error {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}
	if opts.ExportBaseURL == "" {
		if cwd, err := os.Getwd(); err == nil {
			opts.ExportBaseURL = cwd
		}
	}
	if err := registry.RegisterTool[SpectralInput](r, "calculate_spectral_index",
		"Calculate a scene-level spectral index (ndvi, ndwi, evi) from band means", CalculateSpectralIndex); err != nil {
		return err
	}
	if opts.ClassifyScript != "" {
		service, err := gosh.New(ctx, local.New())
		if err != nil {
			return err
		}
		classifier := NewClassifier(service, opts.ClassifyScript)
		if err := registry.RegisterTool[ClassifyInput](r, "classify_scene",
			"Run the external classification model over a scene", classifier.Call); err != nil {
			return err
		}
	}
	exporter := NewExporter(opts.ExportBaseURL)
	return registry.RegisterTool[ExportInput](r, "export_result",
		"Persist a tool result as a JSON artifact", exporter.Call)
}
