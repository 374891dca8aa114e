package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/palgen/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring a config file.
type envConfig struct {
	ConfigPath string // PALGEN_CONFIG: config file name or path
	Preset     string // PALGEN_PRESET: preset name
	SourceDir  string // PALGEN_SOURCE_DIR: palette source directory
	Output     string // PALGEN_OUTPUT: generated file path
	NoSync     bool   // PALGEN_NO_SYNC: skip git submodule update
}

// knownEnvVars lists valid PALGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PALGEN_CONFIG":     true,
	"PALGEN_PRESET":     true,
	"PALGEN_SOURCE_DIR": true,
	"PALGEN_OUTPUT":     true,
	"PALGEN_NO_SYNC":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("PALGEN_CONFIG"),
		Preset:     getenv("PALGEN_PRESET"),
		SourceDir:  getenv("PALGEN_SOURCE_DIR"),
		Output:     getenv("PALGEN_OUTPUT"),
	}

	// Any true-ish value disables sync; unparsable values are ignored.
	if v := getenv("PALGEN_NO_SYNC"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoSync = b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized PALGEN_* variables.
// Helps catch typos like PALGEN_SOURCEDIR instead of PALGEN_SOURCE_DIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, "PALGEN_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Precedence: CLI flags > env vars > config file > preset
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Preset != "" {
		cfg.Preset = env.Preset
	}
	if env.SourceDir != "" {
		cfg.Source.Dir = env.SourceDir
	}
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
	if env.NoSync {
		sync := false
		cfg.Source.Sync = &sync
	}
}
