package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/palgen/internal/fileutil"
)

// commands maps command names to their handlers.
var commands = map[string]func(ctx context.Context, args []string, env *Environment) error{
	"generate": runGenerate,
	"check":    runCheck,
	"list":     runList,
	"show":     runShow,
	"init": func(_ context.Context, args []string, env *Environment) error {
		return runInit(args, env)
	},
	"completion": func(_ context.Context, args []string, env *Environment) error {
		return runCompletion(args, env)
	},
	"help": func(_ context.Context, args []string, env *Environment) error {
		return runHelp(args, env)
	},
	"version": func(_ context.Context, _ []string, env *Environment) error {
		fmt.Fprintf(env.Stdout, "palgen %s\n", Version)
		return nil
	},
}

// isCommand reports whether s names a command.
func isCommand(s string) bool {
	return slices.Contains(commandNames(), s)
}

// run dispatches args (including the program name) and returns the exit code.
// Without a command, or when the first argument is a flag or a project
// root, palgen generates.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	cmd := "generate"
	if len(args) > 0 {
		switch first := args[0]; {
		case first == "-h" || first == "--help":
			printUsage(env.Stdout)
			return ExitSuccess
		case isCommand(first):
			cmd, args = first, args[1:]
		case strings.HasPrefix(first, "-"):
		case looksLikeRoot(first):
		default:
			fmt.Fprintf(env.Stderr, "palgen: unknown command %q\n", first)
			printUsage(env.Stderr)
			return ExitUsage
		}
	}

	// Doctor reports through its own exit code.
	if cmd == "doctor" {
		return runDoctorCmd(ctx, args, env)
	}

	err := commands[cmd](ctx, args, env)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, flag.ErrHelp):
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "palgen: %v\n", err)
	return exitCodeFor(err)
}

// looksLikeRoot reports whether a bare argument is meant as a project root
// rather than a mistyped command.
func looksLikeRoot(s string) bool {
	return s == "." || s == ".." || strings.ContainsAny(s, `/\`) || fileutil.DirExists(s)
}
