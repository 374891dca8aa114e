// Package config loads and resolves palgen configuration files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alnah/palgen/internal/fileutil"
	"github.com/alnah/palgen/internal/ident"
	"github.com/alnah/palgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrUnknownPreset   = errors.New("unknown preset")
)

// DefaultName is the config name searched when none is given.
const DefaultName = "palgen"

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxIdentLength     = 128
	MaxExtensionLength = 16
	MaxHeaderLength    = 16 << 10
	MaxPresetLength    = 32
)

// Config holds the settings of one palgen project.
// Zero fields are filled from the preset by Resolve.
type Config struct {
	Preset string       `yaml:"preset,omitempty" toml:"preset,omitempty"`
	Source SourceConfig `yaml:"source" toml:"source"`
	Output OutputConfig `yaml:"output" toml:"output"`
}

// SourceConfig locates the palette files.
type SourceConfig struct {
	Dir       string `yaml:"dir,omitempty" toml:"dir,omitempty"`             // Relative to the project root
	Extension string `yaml:"extension,omitempty" toml:"extension,omitempty"` // Default ".pal"
	Sync      *bool  `yaml:"sync,omitempty" toml:"sync,omitempty"`           // Run git submodule update (default true)
	Submodule string `yaml:"submodule,omitempty" toml:"submodule,omitempty"` // Limit the update to one submodule path
}

// OutputConfig describes the generated file.
type OutputConfig struct {
	Path        string `yaml:"path,omitempty" toml:"path,omitempty"`               // Relative to the project root
	Language    string `yaml:"language,omitempty" toml:"language,omitempty"`       // "cpp" or "go"
	Quote       string `yaml:"quote,omitempty" toml:"quote,omitempty"`             // "raw" or "escaped"
	Namespace   string `yaml:"namespace,omitempty" toml:"namespace,omitempty"`     // C++ namespace or Go package
	Table       string `yaml:"table,omitempty" toml:"table,omitempty"`             // Variable name
	Header      string `yaml:"header,omitempty" toml:"header,omitempty"`           // License/attribution text
	TemplateDir string `yaml:"templateDir,omitempty" toml:"templateDir,omitempty"` // Empty = embedded templates
}

// SyncEnabled reports whether the source should be synced before reading.
func (c *Config) SyncEnabled() bool {
	return c.Source.Sync == nil || *c.Source.Sync
}

// Validate checks field lengths and enumerated values. Identifier syntax is
// checked on the resolved config, where the language is known.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"preset", c.Preset, MaxPresetLength},
		{"source.dir", c.Source.Dir, MaxPathLength},
		{"source.extension", c.Source.Extension, MaxExtensionLength},
		{"source.submodule", c.Source.Submodule, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"output.namespace", c.Output.Namespace, MaxIdentLength},
		{"output.table", c.Output.Table, MaxIdentLength},
		{"output.header", c.Output.Header, MaxHeaderLength},
		{"output.templateDir", c.Output.TemplateDir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Preset != "" && !slices.Contains(PresetNames(), c.Preset) {
		return fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, c.Preset, strings.Join(PresetNames(), ", "))
	}
	if c.Source.Extension != "" {
		if err := fileutil.ValidateExtension(c.Source.Extension); err != nil {
			return fmt.Errorf("%w: source.extension: %w", ErrInvalidValue, err)
		}
	}
	switch c.Output.Language {
	case "", LanguageCpp, LanguageGo:
	default:
		return fmt.Errorf("%w: output.language %q (must be cpp or go)", ErrInvalidValue, c.Output.Language)
	}
	switch c.Output.Quote {
	case "", QuoteRaw, QuoteEscaped:
	default:
		return fmt.Errorf("%w: output.quote %q (must be raw or escaped)", ErrInvalidValue, c.Output.Quote)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Resolve returns a copy of c with every empty field taken from its preset.
// A Go target whose package is not set is named after the output directory.
func (c *Config) Resolve() (*Config, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name := c.Preset
	if name == "" {
		name = DefaultPreset
	}
	base, err := Preset(name)
	if err != nil {
		return nil, err
	}

	out := *base
	out.Preset = name
	overlay(&out.Source.Dir, c.Source.Dir)
	overlay(&out.Source.Extension, c.Source.Extension)
	overlay(&out.Source.Submodule, c.Source.Submodule)
	if c.Source.Sync != nil {
		sync := *c.Source.Sync
		out.Source.Sync = &sync
	}
	overlay(&out.Output.Path, c.Output.Path)
	overlay(&out.Output.Language, c.Output.Language)
	overlay(&out.Output.Quote, c.Output.Quote)
	overlay(&out.Output.Namespace, c.Output.Namespace)
	overlay(&out.Output.Table, c.Output.Table)
	overlay(&out.Output.Header, c.Output.Header)
	overlay(&out.Output.TemplateDir, c.Output.TemplateDir)

	if out.Output.Language == LanguageGo && c.Output.Namespace == "" && c.Output.Path != "" {
		if pkg := ident.PackageName(filepath.Base(filepath.Dir(c.Output.Path))); pkg != "" {
			out.Output.Namespace = pkg
		}
	}
	return &out, nil
}

func overlay(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Files ending in .toml are decoded as TOML, anything else as YAML.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, string, error) {
	if nameOrPath == "" {
		return nil, "", ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, "", err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, "", fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(configPath))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, configPath, nil
}

// Parse decodes and validates a config. ext selects the format: ".toml"
// for TOML, anything else for YAML. Unknown keys are rejected in both.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	if strings.EqualFold(ext, ".toml") {
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown field %q", ErrConfigParse, undecoded[0].String())
		}
	} else if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Encode writes cfg in the format selected by ext, the inverse of Parse.
func Encode(cfg *Config, ext string) ([]byte, error) {
	if strings.EqualFold(ext, ".toml") {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("encoding TOML: %w", err)
		}
		return buf.Bytes(), nil
	}
	return yamlutil.Marshal(cfg)
}

// Extensions lists config file extensions in search order.
var Extensions = []string{".yaml", ".yml", ".toml"}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries locations in order: current directory, <user config dir>/palgen/
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, path := range paths {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// SearchPaths lists the files LoadConfig tries for a config name.
func SearchPaths(name string) []string {
	paths := make([]string, 0, len(Extensions)*2)
	for _, ext := range Extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range Extensions {
			paths = append(paths, filepath.Join(userConfigDir, DefaultName, name+ext))
		}
	}
	return paths
}
