// Package config loads RunConfig, the host CLI's run-time defaults, from an
// optional YAML file and layers explicit command-line overrides on top of
// it. It generalizes the teacher's LexerOption functional-options style
// (internal/lexer) to a single config value both the run and repl
// subcommands share.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// RunConfig holds the host CLI's run-time defaults. MaxCallDepth is carried
// for forward compatibility with a future recursive-call extension; the
// core interpreter does not consult it today.
type RunConfig struct {
	MaxCallDepth   int    `yaml:"maxCallDepth"`
	TracingEnabled bool   `yaml:"tracingEnabled"`
	OutputFormat   string `yaml:"outputFormat"`
	Prompt         string `yaml:"prompt"`
	HistoryFile    string `yaml:"historyFile"`
}

// Default returns the built-in RunConfig used when no basic.yaml is present
// and no flags override it.
func Default() RunConfig {
	return RunConfig{
		MaxCallDepth:   0,
		TracingEnabled: false,
		OutputFormat:   "text",
		Prompt:         "> ",
		HistoryFile:    "",
	}
}

// Option mutates a RunConfig, mirroring the teacher's LexerOption pattern
// for applying command-line overrides after a file load.
type Option func(*RunConfig)

// WithTracing turns TracingEnabled on when v is true (the --trace flag was
// passed); a false v leaves the loaded value unchanged.
func WithTracing(v bool) Option {
	return func(c *RunConfig) {
		if v {
			c.TracingEnabled = v
		}
	}
}

// WithOutputFormat overrides OutputFormat with v; an empty v leaves it
// unchanged.
func WithOutputFormat(v string) Option {
	return func(c *RunConfig) {
		if v != "" {
			c.OutputFormat = v
		}
	}
}

// WithPrompt overrides Prompt with v; an empty v leaves it unchanged.
func WithPrompt(v string) Option {
	return func(c *RunConfig) {
		if v != "" {
			c.Prompt = v
		}
	}
}

// WithHistoryFile overrides HistoryFile with v; an empty v leaves it
// unchanged.
func WithHistoryFile(v string) Option {
	return func(c *RunConfig) {
		if v != "" {
			c.HistoryFile = v
		}
	}
}

// Load reads path (if non-empty and present) as YAML over Default, then
// applies opts in order. A missing path is not an error: Load falls back to
// Default so that running without --config still works.
func Load(path string, opts ...Option) (RunConfig, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, err
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, nil
}
