package main

import (
	"context"
	"fmt"
)

// runList prints the palette names in table order, one per line.
func runList(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePipelineFlags("list", args, env.Stderr)
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

	for _, name := range build.Table.Names() {
		fmt.Fprintln(env.Stdout, name)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "%d palettes in %s\n", len(build.Table), p.request().SourcePath())
	}
	return nil
}
