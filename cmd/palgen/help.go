package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: palgen [command] [flags] [root]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Embed gnuplot palette files into a generated C++ or Go source table.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate    Sync palettes and write the table (default)")
	fmt.Fprintln(w, "  check       Fail if the generated table is stale")
	fmt.Fprintln(w, "  list        List the palettes that would be embedded")
	fmt.Fprintln(w, "  show        Print the generated table to stdout")
	fmt.Fprintln(w, "  init        Write a starter config file")
	fmt.Fprintln(w, "  doctor      Check git, source and output setup")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'palgen help <command>' for details on a specific command.")
}

// printPipelineFlags prints the flags shared by generate, check, list, show and doctor.
func printPipelineFlags(w io.Writer) {
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  root    Project root (default: git top level, else working directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Source:")
	fmt.Fprintln(w, "  -p, --preset <name>       Preset: plot, sciplot, go (default sciplot)")
	fmt.Fprintln(w, "  -s, --source <dir>        Palette source directory, relative to root")
	fmt.Fprintln(w, "      --ext <ext>           Palette file extension (default .pal)")
	fmt.Fprintln(w, "      --submodule <path>    Limit the git update to this submodule")
	fmt.Fprintln(w, "      --no-sync             Skip git submodule update")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Generated file path, relative to root")
	fmt.Fprintln(w, "  -l, --lang <lang>         Output language: cpp, go")
	fmt.Fprintln(w, "      --quote <style>       Literal style: raw, escaped")
	fmt.Fprintln(w, "  -n, --namespace <name>    C++ namespace or Go package")
	fmt.Fprintln(w, "  -t, --table <name>        Table variable name")
	fmt.Fprintln(w, "      --header-file <path>  File holding the license header")
	fmt.Fprintln(w, "      --template-dir <dir>  Directory of custom templates (cpp.tmpl, go.tmpl)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show git output and timing")
}

// printEnvUsage prints the environment variables read by pipeline commands.
func printEnvUsage(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PALGEN_CONFIG      Config file name or path")
	fmt.Fprintln(w, "  PALGEN_PRESET      Preset name")
	fmt.Fprintln(w, "  PALGEN_SOURCE_DIR  Palette source directory")
	fmt.Fprintln(w, "  PALGEN_OUTPUT      Generated file path")
	fmt.Fprintln(w, "  PALGEN_NO_SYNC     Skip git submodule update when true")
}

// printCommandUsage prints usage for one command.
func printCommandUsage(w io.Writer, cmd string) {
	switch cmd {
	case "generate":
		fmt.Fprintln(w, "Usage: palgen [generate] [flags] [root]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Update the palette submodule, then write every palette into the generated table.")
		fmt.Fprintln(w, "The file is rewritten on each run; identical runs produce identical bytes.")
		fmt.Fprintln(w)
		printPipelineFlags(w)
		fmt.Fprintln(w)
		printEnvUsage(w)
	case "check":
		fmt.Fprintln(w, "Usage: palgen check [flags] [root]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Render the table in memory and compare it with the file on disk.")
		fmt.Fprintln(w, "Exits with status 5 when the file is missing or out of date.")
		fmt.Fprintln(w)
		printPipelineFlags(w)
	case "list":
		fmt.Fprintln(w, "Usage: palgen list [flags] [root]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the name of every palette that would be embedded, in table order.")
		fmt.Fprintln(w)
		printPipelineFlags(w)
	case "show":
		fmt.Fprintln(w, "Usage: palgen show [flags] [root]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the generated table to stdout without writing it.")
		fmt.Fprintln(w)
		printPipelineFlags(w)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Display:")
		fmt.Fprintln(w, "      --highlight[=mode]    Syntax highlighting: auto, always, never (default auto)")
		fmt.Fprintln(w, "      --style <name>        Highlighting style (default monokai)")
	case "init":
		fmt.Fprintln(w, "Usage: palgen init [flags] [path]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Write a starter config file (default palgen.yaml) for a preset.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		fmt.Fprintln(w, "  -p, --preset <name>       Preset: plot, sciplot, go (default sciplot)")
		fmt.Fprintln(w, "      --format <fmt>        File format: yaml, toml (default from extension)")
		fmt.Fprintln(w, "  -f, --force               Overwrite an existing file")
	case "doctor":
		fmt.Fprintln(w, "Usage: palgen doctor [flags] [root]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Check that git, the palette source and the output location are usable.")
		fmt.Fprintln(w, "Exits with status 1 when errors are found.")
		fmt.Fprintln(w)
		printPipelineFlags(w)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Output:")
		fmt.Fprintln(w, "      --json                Print results as JSON")
	case "completion":
		printCompletionUsage(w)
	case "version":
		fmt.Fprintln(w, "Usage: palgen version")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show version information.")
	case "help":
		fmt.Fprintln(w, "Usage: palgen help [command]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show help for a command.")
	default:
		printUsage(w)
	}
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}
	if !isCommand(args[0]) {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	printCommandUsage(env.Stdout, args[0])
	return nil
}
