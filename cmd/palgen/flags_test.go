package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"

	"github.com/alnah/palgen/internal/config"
)

// ---------------------------------------------------------------------------
// TestParsePipelineFlags - Flag parsing and validation
// ---------------------------------------------------------------------------

func TestParsePipelineFlags(t *testing.T) {
	t.Parallel()

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		args := []string{
			"-c", "ci.toml", "-v",
			"-p", "go", "-s", "vendor/pal", "--ext", ".gp", "--submodule", "vendor/pal", "--no-sync",
			"-o", "pal/gen.go", "-l", "go", "--quote", "escaped", "-n", "pal", "-t", "Table",
			"--template-dir", "tmpl",
			"project",
		}
		f, rest, err := parsePipelineFlags("generate", args, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("parsePipelineFlags() error: %v", err)
		}

		if f.common != (commonFlags{config: "ci.toml", verbose: true}) {
			t.Errorf("common = %+v", f.common)
		}
		if f.source != (sourceFlags{preset: "go", dir: "vendor/pal", extension: ".gp", submodule: "vendor/pal", noSync: true}) {
			t.Errorf("source = %+v", f.source)
		}
		want := targetFlags{output: "pal/gen.go", language: "go", quote: "escaped", namespace: "pal", table: "Table", templateDir: "tmpl"}
		if f.target != want {
			t.Errorf("target = %+v, want %+v", f.target, want)
		}
		if len(rest) != 1 || rest[0] != "project" {
			t.Errorf("positional = %q, want [project]", rest)
		}
	})

	t.Run("show defaults", func(t *testing.T) {
		t.Parallel()

		f, _, err := parsePipelineFlags("show", nil, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("parsePipelineFlags() error: %v", err)
		}
		if f.highlight != "auto" || f.style != "monokai" {
			t.Errorf("highlight = %q, style = %q", f.highlight, f.style)
		}
	})

	t.Run("json only on doctor", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parsePipelineFlags("generate", []string{"--json"}, &bytes.Buffer{}); !errors.Is(err, ErrUsage) {
			t.Errorf("generate --json error = %v, want ErrUsage", err)
		}
		f, _, err := parsePipelineFlags("doctor", []string{"--json"}, &bytes.Buffer{})
		if err != nil || !f.json {
			t.Errorf("doctor --json = %+v, %v", f, err)
		}
	})

	t.Run("help is passed through", func(t *testing.T) {
		t.Parallel()

		var stderr bytes.Buffer
		_, _, err := parsePipelineFlags("check", []string{"-h"}, &stderr)
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("error = %v, want flag.ErrHelp", err)
		}
		if !bytes.Contains(stderr.Bytes(), []byte("Usage: palgen check")) {
			t.Errorf("usage not printed: %q", stderr.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestMergeFlags - Flags override config values
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("set flags win, unset flags keep config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Preset: "plot",
			Source: config.SourceConfig{Dir: "palettes", Extension: ".pal"},
			Output: config.OutputConfig{Path: "plot/palletes.hpp", Table: "palletes"},
		}
		f := &pipelineFlags{
			source: sourceFlags{dir: "vendor", noSync: true},
			target: targetFlags{table: "palettes", quote: "escaped"},
		}
		if err := mergeFlags(f, cfg); err != nil {
			t.Fatalf("mergeFlags() error: %v", err)
		}

		if cfg.Preset != "plot" || cfg.Source.Extension != ".pal" || cfg.Output.Path != "plot/palletes.hpp" {
			t.Errorf("unset flags changed config: %+v", cfg)
		}
		if cfg.Source.Dir != "vendor" || cfg.Output.Table != "palettes" || cfg.Output.Quote != "escaped" {
			t.Errorf("set flags not applied: %+v", cfg)
		}
		if cfg.SyncEnabled() {
			t.Error("--no-sync not applied")
		}
	})

	t.Run("header file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "LICENSE")
		if err := os.WriteFile(path, []byte("Copyright 2026\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg := &config.Config{}
		if err := mergeFlags(&pipelineFlags{target: targetFlags{headerFile: path}}, cfg); err != nil {
			t.Fatalf("mergeFlags() error: %v", err)
		}
		if cfg.Output.Header != "Copyright 2026\n" {
			t.Errorf("Header = %q", cfg.Output.Header)
		}

		err := mergeFlags(&pipelineFlags{target: targetFlags{headerFile: path + ".missing"}}, cfg)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("missing header error = %v, want os.ErrNotExist", err)
		}
	})
}
