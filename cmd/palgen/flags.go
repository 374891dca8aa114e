package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/palgen/internal/config"
)

// ErrUsage marks command line mistakes.
var ErrUsage = errors.New("usage error")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// sourceFlags holds flags that locate the palettes.
type sourceFlags struct {
	preset    string
	dir       string
	extension string
	submodule string
	noSync    bool
}

// targetFlags holds flags that shape the generated file.
type targetFlags struct {
	output      string
	language    string
	quote       string
	namespace   string
	table       string
	headerFile  string
	templateDir string
}

// pipelineFlags holds all flags for generate, check, list, show and doctor.
type pipelineFlags struct {
	common    commonFlags
	source    sourceFlags
	target    targetFlags
	highlight string // show only: auto, always, never
	style     string // show only: chroma style
	json      bool   // doctor only
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show git output and timing")
}

// addSourceFlags adds palette source flags to a FlagSet.
func addSourceFlags(fs *flag.FlagSet, f *sourceFlags) {
	fs.StringVarP(&f.preset, "preset", "p", "", "preset: plot, sciplot, go")
	fs.StringVarP(&f.dir, "source", "s", "", "palette source directory")
	fs.StringVar(&f.extension, "ext", "", "palette file extension")
	fs.StringVar(&f.submodule, "submodule", "", "limit the git update to this submodule path")
	fs.BoolVar(&f.noSync, "no-sync", false, "skip git submodule update")
}

// addTargetFlags adds output flags to a FlagSet.
func addTargetFlags(fs *flag.FlagSet, f *targetFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "generated file path")
	fs.StringVarP(&f.language, "lang", "l", "", "output language: cpp, go")
	fs.StringVar(&f.quote, "quote", "", "literal style: raw, escaped")
	fs.StringVarP(&f.namespace, "namespace", "n", "", "C++ namespace or Go package")
	fs.StringVarP(&f.table, "table", "t", "", "table variable name")
	fs.StringVar(&f.headerFile, "header-file", "", "file holding the license header")
	fs.StringVar(&f.templateDir, "template-dir", "", "directory of custom templates")
}

// newPipelineFlagSet creates the FlagSet of a pipeline command.
// Completion uses it as well, so flags are declared once.
func newPipelineFlagSet(cmd string, f *pipelineFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addSourceFlags(fs, &f.source)
	addTargetFlags(fs, &f.target)

	switch cmd {
	case "show":
		fs.StringVar(&f.highlight, "highlight", "auto", "syntax highlighting: auto, always, never")
		fs.Lookup("highlight").NoOptDefVal = "always"
		fs.StringVar(&f.style, "style", "monokai", "highlighting style")
	case "doctor":
		fs.BoolVar(&f.json, "json", false, "print results as JSON")
	}
	return fs
}

// parsePipelineFlags parses flags for a pipeline command.
func parsePipelineFlags(cmd string, args []string, stderr io.Writer) (*pipelineFlags, []string, error) {
	f := &pipelineFlags{}
	fs := newPipelineFlagSet(cmd, f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printCommandUsage(stderr, cmd) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if f.common.quiet && f.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	switch f.highlight {
	case "", "auto", "always", "never":
	default:
		return nil, nil, fmt.Errorf("%w: --highlight must be auto, always or never", ErrUsage)
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: expected at most one project root, got %d arguments", ErrUsage, fs.NArg())
	}
	return f, fs.Args(), nil
}

// mergeFlags applies explicitly set flags over cfg.
func mergeFlags(f *pipelineFlags, cfg *config.Config) error {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.Preset, f.source.preset)
	set(&cfg.Source.Dir, f.source.dir)
	set(&cfg.Source.Extension, f.source.extension)
	set(&cfg.Source.Submodule, f.source.submodule)
	if f.source.noSync {
		sync := false
		cfg.Source.Sync = &sync
	}

	set(&cfg.Output.Path, f.target.output)
	set(&cfg.Output.Language, f.target.language)
	set(&cfg.Output.Quote, f.target.quote)
	set(&cfg.Output.Namespace, f.target.namespace)
	set(&cfg.Output.Table, f.target.table)
	set(&cfg.Output.TemplateDir, f.target.templateDir)

	if f.target.headerFile != "" {
		data, err := os.ReadFile(f.target.headerFile) // #nosec G304 -- header path is user-provided
		if err != nil {
			return fmt.Errorf("reading header file: %w", err)
		}
		cfg.Output.Header = string(data)
	}
	return nil
}
