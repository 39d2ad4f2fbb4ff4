// Package config loads the optional bridge configuration file.
package config

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"
)

// Config mirrors the flag surface of the bridge; flags take precedence.
type Config struct {
	URL            string `yaml:"url,omitempty" json:"url,omitempty"`
	Token          string `yaml:"token,omitempty" json:"token,omitempty"`
	SecretURL      string `yaml:"secretURL,omitempty" json:"secretURL,omitempty"`
	Local          bool   `yaml:"local,omitempty" json:"local,omitempty"`
	ClassifyScript string `yaml:"classifyScript,omitempty" json:"classifyScript,omitempty"`
	ExportBaseURL  string `yaml:"exportBaseURL,omitempty" json:"exportBaseURL,omitempty"`
}

// Load reads a JSON config from any afs-addressable URL or local path.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	return cfg, nil
}
