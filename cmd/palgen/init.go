package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/palgen/internal/config"
	"github.com/alnah/palgen/internal/fileutil"
)

// ErrConfigExists is returned by init when the target file exists.
var ErrConfigExists = errors.New("config file already exists")

// initFlags holds flags for the init command.
type initFlags struct {
	preset string
	format string
	force  bool
}

// newInitFlagSet creates the FlagSet of the init command.
func newInitFlagSet(f *initFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.StringVarP(&f.preset, "preset", "p", config.DefaultPreset, "preset: plot, sciplot, go")
	fs.StringVar(&f.format, "format", "", "file format: yaml, toml (default from extension)")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing file")
	return fs
}

// runInit writes a starter config file for a preset.
func runInit(args []string, env *Environment) error {
	f := &initFlags{}
	fs := newInitFlagSet(f)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printCommandUsage(env.Stderr, "init") }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: expected at most one path", ErrUsage)
	}

	path := config.DefaultName + ".yaml"
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}
	ext := filepath.Ext(path)
	switch f.format {
	case "":
	case "yaml", "toml":
		if named := formatOf(ext); named != "" && named != f.format {
			return fmt.Errorf("%w: --format %s does not match %s", ErrUsage, f.format, path)
		}
		ext = "." + f.format
	default:
		return fmt.Errorf("%w: --format must be yaml or toml", ErrUsage)
	}

	preset, err := config.Preset(f.preset)
	if err != nil {
		return err
	}
	if !f.force && fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	data, err := config.Encode(starterConfig(f.preset, preset), ext)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(env.Stdout, "wrote %s (preset %s)\n", path, f.preset)
	return nil
}

// starterConfig spells out the preset's settings so they can be edited.
// The license header stays with the preset.
func starterConfig(name string, preset *config.Config) *config.Config {
	sync := true
	return &config.Config{
		Preset: name,
		Source: config.SourceConfig{
			Dir:       preset.Source.Dir,
			Extension: preset.Source.Extension,
			Sync:      &sync,
		},
		Output: config.OutputConfig{
			Path:      preset.Output.Path,
			Language:  preset.Output.Language,
			Quote:     preset.Output.Quote,
			Namespace: preset.Output.Namespace,
			Table:     preset.Output.Table,
		},
	}
}

// formatOf names the config format implied by a file extension, or "" when
// the extension is not a config extension.
func formatOf(ext string) string {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	}
	return ""
}
