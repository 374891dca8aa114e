package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/palgen"
)

// runCheck reports whether the generated file matches a fresh render.
// It never writes; a stale file yields palgen.ErrStale (exit 5).
func runCheck(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePipelineFlags("check", args, env.Stderr)
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

	res, err := gen.Check(ctx, p.request())
	if err != nil && !errors.Is(err, palgen.ErrStale) {
		return p.withHint(err)
	}

	rel := relPath(p.root, res.Output)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "want %016x, got %016x\n", res.Want, res.Got)
	}
	if err != nil {
		return p.withHint(err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%s is up to date\n", rel)
	}
	return nil
}
