package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/palgen"
	"github.com/alnah/palgen/internal/config"
	"github.com/alnah/palgen/internal/fileutil"
	"github.com/alnah/palgen/internal/git"
	"github.com/alnah/palgen/internal/ident"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // "ready", "warnings", "errors"
	Git      gitInfo     `json:"git"`
	Project  projectInfo `json:"project"`
	Env      envInfo     `json:"environment"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// gitInfo holds git detection results.
type gitInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// projectInfo holds the resolved project layout.
type projectInfo struct {
	Root           string `json:"root,omitempty"`
	Config         string `json:"config,omitempty"`
	Preset         string `json:"preset,omitempty"`
	Sync           bool   `json:"sync"`
	SourceDir      string `json:"source_dir,omitempty"`
	SourceFound    bool   `json:"source_found"`
	Palettes       int    `json:"palettes"`
	Output         string `json:"output,omitempty"`
	OutputWritable bool   `json:"output_writable"`
	TemplateDir    string `json:"template_dir,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
	CI   bool   `json:"ci"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parsePipelineFlags("doctor", args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "palgen: %v\n", err)
		return ExitUsage
	}

	result := runDoctor(ctx, flags, positional, env)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context, flags *pipelineFlags, args []string, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkGit(ctx, result, env)
	checkCI(result, env)
	checkEnvVars(result, env)

	// Env var warnings go into the report instead of stderr.
	flags.common.quiet = true
	p, err := loadProject(ctx, flags, args, env)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Configuration: %v", err))
	} else {
		checkProject(result, p)
	}

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkGit detects the git executable and its version.
func checkGit(ctx context.Context, result *doctorResult, env *Environment) {
	client := git.NewClient()
	client.Bin = env.GitBin

	path, err := client.LookPath()
	if err != nil {
		return
	}
	result.Git.Found = true
	result.Git.Path = path

	version, err := client.Version(ctx)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not get git version: %v", err))
		return
	}
	result.Git.Version = version
}

// checkCI detects CI environments, where vendored palettes are common.
func checkCI(result *doctorResult, env *Environment) {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if env.Getenv(v) != "" {
			result.Env.CI = true
			return
		}
	}
}

// checkEnvVars reports PALGEN_* variables palgen does not read.
func checkEnvVars(result *doctorResult, env *Environment) {
	for _, kv := range env.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "PALGEN_") && !knownEnvVars[name] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Unknown environment variable %s (typo?)", name))
		}
	}
}

// checkProject verifies the source directory, output location and templates.
func checkProject(result *doctorResult, p *project) {
	req := p.request()
	info := &result.Project
	info.Root = p.root
	info.Config = p.configPath
	info.Preset = p.cfg.Preset
	info.Sync = p.cfg.SyncEnabled()
	info.SourceDir = req.SourcePath()
	info.Output = req.OutputPath()
	info.TemplateDir = p.cfg.Output.TemplateDir

	switch {
	case info.Sync && !result.Git.Found:
		result.Errors = append(result.Errors, "git not found but source sync is enabled. Install git or use --no-sync")
	case !info.Sync && !result.Git.Found:
		result.Warnings = append(result.Warnings, "git not found (not needed: sync disabled)")
	}

	files, err := palgen.ListPaletteFiles(os.DirFS(info.SourceDir), p.cfg.Source.Extension)
	switch {
	case err == nil:
		info.SourceFound = true
		info.Palettes = len(files)
		if len(files) == 0 && info.Sync {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("No *%s files in %s yet; git submodule update will fetch them", p.cfg.Source.Extension, info.SourceDir))
		}
	case info.Sync:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Source directory %s not readable yet; git submodule update will fetch it", info.SourceDir))
	default:
		result.Errors = append(result.Errors, fmt.Sprintf("Source directory not readable: %s", info.SourceDir))
	}

	info.OutputWritable = checkWritable(result, filepath.Dir(info.Output))

	if out := p.cfg.Output; out.Language == config.LanguageGo && !ident.IsGoExported(out.Table) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Table %s is unexported; only package %s can read it", out.Table, out.Namespace))
	}

	if dir := p.cfg.Output.TemplateDir; dir != "" {
		if _, err := palgen.NewTemplateLoader(fileutil.ResolveUnder(p.root, dir)); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Template directory: %v", err))
		}
	}
}

// checkWritable reports whether files can be created in dir. A missing
// directory is created on generation, so it only warns.
func checkWritable(result *doctorResult, dir string) bool {
	if !fileutil.DirExists(dir) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Output directory %s does not exist; it will be created", dir))
		return true
	}
	f, err := os.CreateTemp(dir, ".palgen-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory not writable: %s", dir))
		return false
	}
	_ = f.Close()
	_ = os.Remove(f.Name())
	return true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "palgen doctor")
	fmt.Fprintln(w)

	// Git section
	fmt.Fprintln(w, "Git")
	if r.Git.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Git.Path)
		if r.Git.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Git.Version)
		}
	} else {
		fmt.Fprintln(w, "  [WARN] Not found")
	}
	fmt.Fprintln(w)

	// Project section
	if pr := r.Project; pr.Root != "" {
		fmt.Fprintln(w, "Project")
		fmt.Fprintf(w, "  [OK] Root: %s\n", pr.Root)
		if pr.Config != "" {
			fmt.Fprintf(w, "  [OK] Config: %s\n", pr.Config)
		} else {
			fmt.Fprintf(w, "  [OK] Config: none (preset %s)\n", pr.Preset)
		}
		if pr.SourceFound {
			fmt.Fprintf(w, "  [OK] Source: %s (%d palettes)\n", pr.SourceDir, pr.Palettes)
		} else {
			fmt.Fprintf(w, "  [WARN] Source: %s (missing)\n", pr.SourceDir)
		}
		if pr.Sync {
			fmt.Fprintln(w, "  [OK] Sync: git submodule update")
		} else {
			fmt.Fprintln(w, "  [OK] Sync: disabled")
		}
		if pr.OutputWritable {
			fmt.Fprintf(w, "  [OK] Output: %s\n", pr.Output)
		} else {
			fmt.Fprintf(w, "  [ERROR] Output: %s (not writable)\n", pr.Output)
		}
		if pr.TemplateDir != "" {
			fmt.Fprintf(w, "  [OK] Templates: %s\n", pr.TemplateDir)
		}
		fmt.Fprintln(w)
	}

	// Environment section
	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
