package main

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// runShow prints the generated source without writing it.
func runShow(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePipelineFlags("show", args, env.Stderr)
	if err != nil {
		return err
	}

	p, err := loadProject(ctx, flags, positional, env)
	if err != nil {
		return err
	}
	gen, err := p.generator(env, flags.common.verbose)
	if err != nil {
		return err
	}

	build, err := gen.Build(ctx, p.request())
	if err != nil {
		return p.withHint(err)
	}

	highlight := flags.highlight == "always" ||
		(flags.highlight == "auto" && env.IsTerminal != nil && env.IsTerminal(env.Stdout))
	if !highlight {
		_, err := env.Stdout.Write(build.Source)
		return err
	}
	return highlightSource(env.Stdout, string(build.Source), p.cfg.Output.Language, flags.style)
}

// highlightSource writes src with ANSI colors for a 256-color terminal.
// Unknown styles fall back to chroma's default style.
func highlightSource(w io.Writer, src, language, styleName string) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("highlighting output: %w", err)
	}
	if err := formatter.Format(w, styles.Get(styleName), iterator); err != nil {
		return fmt.Errorf("highlighting output: %w", err)
	}
	return nil
}
