// Package config loads the optional YAML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/ame"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/extract"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config holds the full converter configuration.
type Config struct {
	Input       string                `yaml:"input"`
	OutputDir   string                `yaml:"output_dir"`
	Fingerprint string                `yaml:"fingerprint"`
	Log         logging.Config        `yaml:"log"`
	Kinds       map[string]KindConfig `yaml:"kinds"`
}

// KindConfig overrides a built-in kind's output file or declares a new kind.
type KindConfig struct {
	Output        string `yaml:"output"`
	Label         string `yaml:"label"`
	Discriminator string `yaml:"discriminator"`
	LabelField    string `yaml:"label_field"`
	LineField     string `yaml:"line_field"`
	Pattern       string `yaml:"pattern"` // empty: the label is the type code
}

// ValidationError reports an invalid configuration value
type ValidationError struct {
	Field string
	msg   string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.msg
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:       "model.json",
		OutputDir:   ".",
		Fingerprint: string(extract.Canonical),
		Log:         logging.DefaultConfig(),
	}
}

// Load reads a YAML config file over DefaultConfig.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later in a run.
func (c *Config) Validate() error {
	if c.Input == "" {
		return &ValidationError{"input", "is required"}
	}
	if _, err := extract.ParseFingerprintMode(c.Fingerprint); err != nil {
		return &ValidationError{"fingerprint", err.Error()}
	}
	for name, k := range c.Kinds {
		field := "kinds." + name
		if ame.IsBuiltin(name) {
			if k.Label != "" || k.Discriminator != "" || k.LabelField != "" || k.LineField != "" || k.Pattern != "" {
				return &ValidationError{field, "built-in kinds accept only output"}
			}
			continue
		}
		if _, err := k.kind(name); err != nil {
			return &ValidationError{field, err.Error()}
		}
	}
	return nil
}

// FingerprintMode returns the configured mode.
func (c *Config) FingerprintMode() extract.FingerprintMode {
	mode, err := extract.ParseFingerprintMode(c.Fingerprint)
	if err != nil {
		return extract.Canonical
	}
	return mode
}

// Registry returns the built-in kinds with configured outputs applied, plus
// every custom kind.
func (c *Config) Registry() (*ame.Registry, error) {
	r := ame.NewRegistry()
	for name, k := range c.Kinds {
		if ame.IsBuiltin(name) {
			if k.Output != "" {
				if err := r.SetOutput(name, k.Output); err != nil {
					return nil, err
				}
			}
			continue
		}
		kind, err := k.kind(name)
		if err != nil {
			return nil, err
		}
		if err := r.Register(kind); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (k KindConfig) kind(name string) (extract.Kind, error) {
	kind := extract.Kind{
		Name:          name,
		Label:         k.Label,
		Discriminator: k.Discriminator,
		LabelField:    k.LabelField,
		LineField:     k.LineField,
		Classifier:    extract.Verbatim{},
		Output:        k.Output,
	}
	if kind.Label == "" {
		kind.Label = name
	}
	if kind.Output == "" {
		kind.Output = name + "_for_grasshopper.json"
	}
	if k.Pattern != "" {
		series, err := extract.NewSeries(k.Pattern)
		if err != nil {
			return extract.Kind{}, err
		}
		kind.Classifier = series
	}
	return kind, kind.Validate()
}
