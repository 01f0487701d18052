// Package config loads and validates the project configuration consumed by
// the localetree CLI and passed into the core packages as plain values.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/localetree/localetree/pkg/loader"
)

var (
	ErrMissingTranslationsDir = errors.New("config: translationsDir is required")
	ErrMissingDefaultLocale   = errors.New("config: defaultLocale is required")
	ErrInvalidFallback        = errors.New("config: fallbackLocale must be a string or a list of strings")
)

// DefaultFileNames are probed in order when no explicit config path is
// given.
var DefaultFileNames = []string{"localetree.yaml", "localetree.yml", ".localetree.yaml"}

// Locales accepts either a single YAML scalar or a sequence of scalars, so
// fallbackLocale can be written as "pt" or as ["pt", "es"].
type Locales []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Locales) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFallback, err)
		}
		if single != "" {
			*l = Locales{single}
		}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFallback, err)
		}
		*l = many
		return nil
	default:
		return ErrInvalidFallback
	}
}

// Config is the project configuration record. Field names follow the
// conventional camelCase config file layout.
type Config struct {
	TranslationsDir string   `yaml:"translationsDir"`
	DefaultLocale   string   `yaml:"defaultLocale"`
	FallbackLocale  Locales  `yaml:"fallbackLocale"`
	Include         []string `yaml:"include"`
	Sources         []string `yaml:"sources"`
	OutDir          string   `yaml:"outDir"`
	TypesOutFile    string   `yaml:"typesOutFile"`
	TypesPackage    string   `yaml:"typesPackage"`
	Verbose         bool     `yaml:"verbose"`
}

// Load reads a config file. An empty path probes DefaultFileNames in the
// working directory; when none exists an empty config is returned so flag
// overrides can still complete it. Validation is a separate step.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, name := range DefaultFileNames {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %q: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks required fields and known source kinds.
func (c *Config) Validate() error {
	if c.TranslationsDir == "" {
		return ErrMissingTranslationsDir
	}
	if c.DefaultLocale == "" {
		return ErrMissingDefaultLocale
	}
	if _, err := loader.Patterns(c.kinds()...); err != nil {
		return err
	}
	return nil
}

// Patterns returns the discovery globs: the explicit include list when
// present, otherwise the expansion of the configured source kinds.
func (c *Config) Patterns() ([]string, error) {
	if len(c.Include) > 0 {
		return c.Include, nil
	}
	return loader.Patterns(c.kinds()...)
}

func (c *Config) kinds() []loader.SourceKind {
	if len(c.Sources) == 0 {
		return loader.DefaultKinds
	}
	kinds := make([]loader.SourceKind, 0, len(c.Sources))
	for _, source := range c.Sources {
		kinds = append(kinds, loader.SourceKind(source))
	}
	return kinds
}
