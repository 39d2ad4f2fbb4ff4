package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/viant/gosh"
)

// ClassifyInput configures one classification run.
type ClassifyInput struct {
	Collection string   `json:"collection"`
	Longitude  float64  `json:"longitude"`
	Latitude   float64  `json:"latitude"`
	Datetime   string   `json:"datetime,omitempty"`
	Classes    []string `json:"classes,omitempty"`
	CloudCover *float64 `json:"cloudCover,omitempty"`
}

// Classifier runs the external classification script, passing the run config
// as a JSON argument and reading the JSON result from stdout - the same
// contract the original imagery service used for its subprocess.
type Classifier struct {
	service *gosh.Service
	script  string
}

// NewClassifier creates a classifier over the given script path.
func NewClassifier(service *gosh.Service, script string) *Classifier {
	return &Classifier{service: service, script: script}
}

// Call executes one classification; the script exit code decides success.
func (c *Classifier) Call(ctx context.Context, input *ClassifyInput) (interface{}, error) {
	cfg, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	command := fmt.Sprintf("python3 %v %v", c.script, shellQuote(string(cfg)))
	output, code, err := c.service.Run(ctx, command)
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, fmt.Errorf("classification exited with code %v: %v", code, strings.TrimSpace(output))
	}
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(extractJSON(output)), &result); err != nil {
		return nil, fmt.Errorf("classification produced malformed output: %w", err)
	}
	return result, nil
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

// extractJSON returns the trailing JSON object of output; the script logs
// progress lines before the result.
func extractJSON(output string) string {
	if index := strings.Index(output, "{"); index != -1 {
		return output[index:]
	}
	return output
}
