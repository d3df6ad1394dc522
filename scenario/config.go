package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultInitial  = "A"
	defaultObserver = "slog"
)

// Config describes one scenario: the initial state, the requests to replay
// and the registered observer that receives the trace.
type Config struct {
	Initial  string   `json:"initial,omitempty" yaml:"initial,omitempty"`
	Requests []string `json:"requests,omitempty" yaml:"requests,omitempty"`
	Observer string   `json:"observer,omitempty" yaml:"observer,omitempty"`
}

// DefaultConfig returns the classic demo: start in A, request1, request2.
func DefaultConfig() Config {
	return Config{
		Initial:  defaultInitial,
		Requests: []string{"request1", "request2"},
		Observer: defaultObserver,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Initial != "" {
		c.Initial = source.Initial
	}
	if len(source.Requests) > 0 {
		c.Requests = source.Requests
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// LoadConfig reads a JSON or YAML config file, chosen by extension, merges
// it with defaults, and returns the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		err = json.Unmarshal(data, &loaded)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// ParseRequests splits a comma-separated request list such as
// "request1,2,request2". Blank items are skipped.
func ParseRequests(list string) []string {
	var out []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
