package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// runGenerate syncs the palettes and writes the generated table.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePipelineFlags("generate", args, env.Stderr)
	if err != nil {
		return err
	}

	start := env.Now()
	p, err := loadProject(ctx, flags, positional, env)
	if err != nil {
		return err
	}
	if flags.common.verbose {
		printProject(env, p)
	}

	gen, err := p.generator(env, flags.common.verbose)
	if err != nil {
		return err
	}

	res, err := gen.Generate(ctx, p.request())
	if err != nil {
		return p.withHint(err)
	}

	if flags.common.quiet {
		return nil
	}
	rel := relPath(p.root, res.Output)
	switch {
	case !res.Changed:
		fmt.Fprintf(env.Stdout, "%s is up to date (%d palettes)\n", rel, len(res.Palettes))
	default:
		fmt.Fprintf(env.Stdout, "wrote %s (%d palettes, %d bytes)\n", rel, len(res.Palettes), res.Size)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "digest %016x, done in %s\n", res.Digest, env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// printProject logs the resolved settings.
func printProject(env *Environment, p *project) {
	cfg := p.cfg
	fmt.Fprintf(env.Stderr, "root: %s\n", p.root)
	if p.configPath != "" {
		fmt.Fprintf(env.Stderr, "config: %s\n", p.configPath)
	} else {
		fmt.Fprintln(env.Stderr, "config: none (preset defaults)")
	}
	fmt.Fprintf(env.Stderr, "preset: %s\n", cfg.Preset)
	fmt.Fprintf(env.Stderr, "source: %s (*%s, sync %t)\n", cfg.Source.Dir, cfg.Source.Extension, cfg.SyncEnabled())
	fmt.Fprintf(env.Stderr, "output: %s (%s/%s %s::%s)\n", cfg.Output.Path, cfg.Output.Language, cfg.Output.Quote, cfg.Output.Namespace, cfg.Output.Table)
}

// relPath shortens path relative to root for display.
func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
