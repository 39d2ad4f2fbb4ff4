package bridge

import (
	"errors"

	"github.com/axion-orbital/planetary-bridge/config"
)

// Options control the bridge binary; values left empty fall back to the
// config file when one is supplied.
type Options struct {
	URL       string `short:"u" long:"url" description:"remote mcp sse url"`
	Token     string `short:"t" long:"token" description:"bearer token passed through to the remote"`
	SecretURL string `short:"s" long:"secret" description:"scy secret resource holding the bearer token"`
	SecretKey string `short:"k" long:"key" description:"scy secret key" default:"blowfish://default"`
	Config    string `short:"c" long:"config" description:"bridge config file url"`
	Local     bool   `short:"l" long:"local" description:"dispatch to the built-in toolset instead of a remote"`

	ClassifyScript string `long:"classify-script" description:"classification script exposed by the local classify_scene tool"`
	ExportBaseURL  string `long:"export-base" description:"base url the local export_result tool writes to"`
}

// Apply overlays config file values onto unset options.
func (o *Options) Apply(cfg *config.Config) {
	if o.URL == "" {
		o.URL = cfg.URL
	}
	if o.Token == "" {
		o.Token = cfg.Token
	}
	if o.SecretURL == "" {
		o.SecretURL = cfg.SecretURL
	}
	if !o.Local {
		o.Local = cfg.Local
	}
	if o.ClassifyScript == "" {
		o.ClassifyScript = cfg.ClassifyScript
	}
	if o.ExportBaseURL == "" {
		o.ExportBaseURL = cfg.ExportBaseURL
	}
}

// Validate ensures exactly one dispatch target is configured.
func (o *Options) Validate() error {
	if o.URL == "" && !o.Local {
		return errors.New("either --url or --local is required")
	}
	if o.URL != "" && o.Local {
		return errors.New("--url and --local are mutually exclusive")
	}
	return nil
}
