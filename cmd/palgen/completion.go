package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/palgen/internal/config"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name      string
	Desc      string
	Flags     []flagDef
	TakesDir  bool     // accepts a project root argument
	Arguments []string // fixed positional values (e.g. shells)
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"preset":    {Values: config.PresetNames()},
	"lang":      {Values: []string{config.LanguageCpp, config.LanguageGo}},
	"quote":     {Values: []string{config.QuoteRaw, config.QuoteEscaped}},
	"highlight": {Values: []string{"auto", "always", "never"}},
	"format":    {Values: []string{"yaml", "toml"}},

	// File flags with glob patterns
	"config":      {FileGlob: "*.yaml,*.yml,*.toml"},
	"header-file": {FileGlob: "*"},
	"output":      {FileGlob: "*.hpp,*.h,*.go"},

	// Directory flags
	"source":       {IsDir: true},
	"template-dir": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// pipelineCommandFlags returns the flag definitions of a pipeline command.
func pipelineCommandFlags(cmd string) []flagDef {
	return extractFlagsFromFlagSet(newPipelineFlagSet(cmd, &pipelineFlags{}))
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	shells := []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

	return []commandDef{
		{Name: "generate", Desc: "Sync palettes and write the table", Flags: pipelineCommandFlags("generate"), TakesDir: true},
		{Name: "check", Desc: "Fail if the generated table is stale", Flags: pipelineCommandFlags("check"), TakesDir: true},
		{Name: "list", Desc: "List the palettes that would be embedded", Flags: pipelineCommandFlags("list"), TakesDir: true},
		{Name: "show", Desc: "Print the generated table to stdout", Flags: pipelineCommandFlags("show"), TakesDir: true},
		{Name: "init", Desc: "Write a starter config file", Flags: extractFlagsFromFlagSet(newInitFlagSet(&initFlags{}))},
		{Name: "doctor", Desc: "Check git, source and output setup", Flags: pipelineCommandFlags("doctor"), TakesDir: true},
		{Name: "completion", Desc: "Generate shell completion script", Arguments: shells},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", Arguments: commandNames()},
	}
}

// commandNames lists every command name in registry order.
func commandNames() []string {
	return []string{"generate", "check", "list", "show", "init", "doctor", "completion", "version", "help"}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// generateBash writes a bash completion function.
func generateBash(w io.Writer) error {
	var b strings.Builder
	cmds := getCommands()

	b.WriteString("# bash completion for palgen\n\n")
	b.WriteString("_palgen_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(commandNames(), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${cmd}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if len(c.Flags) > 0 {
			b.WriteString("        case \"${prev}\" in\n")
			for _, f := range c.Flags {
				if f.Type == flagBool || f.Type == flagString {
					continue
				}
				fmt.Fprintf(&b, "        %s)\n", bashFlagPattern(f))
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(f.Values, " "))
				case flagDir:
					b.WriteString("            COMPREPLY=($(compgen -d -- \"${cur}\"))\n")
				case flagFile:
					b.WriteString("            COMPREPLY=($(compgen -f -- \"${cur}\"))\n")
				}
				b.WriteString("            return\n")
				b.WriteString("            ;;\n")
			}
			b.WriteString("        esac\n")
		}
		b.WriteString("        if [[ \"${cur}\" == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", bashFlagWords(c.Flags))
		b.WriteString("            return\n")
		b.WriteString("        fi\n")
		switch {
		case len(c.Arguments) > 0:
			fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(c.Arguments, " "))
		case c.TakesDir:
			b.WriteString("        COMPREPLY=($(compgen -d -- \"${cur}\"))\n")
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _palgen_completions palgen\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// bashFlagPattern returns the case pattern matching both spellings of f.
func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "--" + f.Long + "|-" + f.Short
	}
	return "--" + f.Long
}

// bashFlagWords lists every flag spelling for compgen.
func bashFlagWords(flags []flagDef) string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// generateZsh writes a zsh completion function.
func generateZsh(w io.Writer) error {
	var b strings.Builder
	cmds := getCommands()

	b.WriteString("#compdef palgen\n\n")
	b.WriteString("_palgen() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		b.WriteString("        _arguments -s \\\n")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "            %s \\\n", zshFlagSpec(f))
		}
		switch {
		case len(c.Arguments) > 0:
			fmt.Fprintf(&b, "            '1:argument:(%s)'\n", strings.Join(c.Arguments, " "))
		case c.TakesDir:
			b.WriteString("            '1:project root:_files -/'\n")
		default:
			b.WriteString("            '*: :'\n")
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_palgen \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshFlagSpec formats one _arguments spec for f.
func zshFlagSpec(f flagDef) string {
	desc := zshEscape(f.Desc)
	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagDir:
		action = fmt.Sprintf(":%s:_files -/", f.Long)
	case flagFile:
		globs := strings.Split(f.FileGlob, ",")
		action = fmt.Sprintf(":%s:_files -g \"%s\"", f.Long, strings.Join(globs, " "))
	default:
		action = fmt.Sprintf(":%s:", f.Long)
	}
	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
}

// zshEscape makes s safe inside a single-quoted zsh spec.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

// generateFish writes fish completion commands.
func generateFish(w io.Writer) error {
	var b strings.Builder
	cmds := getCommands()

	b.WriteString("# fish completion for palgen\n\n")
	b.WriteString("function __fish_palgen_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_palgen_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c palgen -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c palgen -n __fish_palgen_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	b.WriteString("\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_palgen_using_command %s'", c.Name)
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c palgen -n %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagFile:
				line += " -r -F"
			case flagString:
				line += " -x"
			}
			line += fmt.Sprintf(" -d '%s'", fishEscape(f.Desc))
			b.WriteString(line + "\n")
		}
		switch {
		case len(c.Arguments) > 0:
			fmt.Fprintf(&b, "complete -c palgen -n %s -a '%s'\n", cond, strings.Join(c.Arguments, " "))
		case c.TakesDir:
			fmt.Fprintf(&b, "complete -c palgen -n %s -a '(__fish_complete_directories)'\n", cond)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// fishEscape makes s safe inside a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer("\\", "\\\\", "'", "\\'").Replace(s)
}

// generatePowerShell writes a PowerShell argument completer.
func generatePowerShell(w io.Writer) error {
	var b strings.Builder
	cmds := getCommands()

	b.WriteString("# powershell completion for palgen\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName palgen -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $elements = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n")
	b.WriteString("    $commands = @{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", c.Name, psEscape(c.Desc))
	}
	b.WriteString("    }\n")
	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		words := strings.Fields(bashFlagWords(c.Flags))
		quoted := make([]string, len(words))
		for i, word := range words {
			quoted[i] = "'" + word + "'"
		}
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n")
	b.WriteString("    $values = @{\n")
	seen := map[string]bool{}
	for _, c := range cmds {
		for _, f := range c.Flags {
			if f.Type != flagEnum || seen[f.Long] {
				continue
			}
			seen[f.Long] = true
			quoted := make([]string, len(f.Values))
			for i, v := range f.Values {
				quoted[i] = "'" + v + "'"
			}
			fmt.Fprintf(&b, "        '--%s' = @(%s)\n", f.Long, strings.Join(quoted, ", "))
		}
	}
	b.WriteString("    }\n\n")
	b.WriteString("    if ($elements.Count -le 1 -or ($elements.Count -eq 2 -and $wordToComplete)) {\n")
	b.WriteString("        $commands.Keys | Where-Object { $_ -like \"$wordToComplete*\" } | Sort-Object | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $commands[$_])\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $prev = $elements[-1]\n")
	b.WriteString("    if ($wordToComplete) { $prev = $elements[-2] }\n")
	b.WriteString("    if ($values.ContainsKey($prev)) {\n")
	b.WriteString("        $values[$prev] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $cmd = $elements[1]\n")
	b.WriteString("    if ($flags.ContainsKey($cmd)) {\n")
	b.WriteString("        $flags[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// psEscape makes s safe inside a single-quoted PowerShell string.
func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: completion takes one shell name, got %d arguments", ErrUsage, len(args))
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: palgen completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(palgen completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(palgen completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    palgen completion fish > ~/.config/fish/completions/palgen.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    palgen completion powershell | Out-String | Invoke-Expression")
}
