// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForSyncUnavailable returns hints when git cannot be run.
func ForSyncUnavailable() string {
	return formatHints([]string{
		"install git or put it on PATH",
		"use --no-sync if the palette directory is vendored",
	})
}

// ForSyncFailed returns hints when git ran but the submodule update failed.
func ForSyncFailed(sourceDir string) string {
	return format("check that " + sourceDir + " is a registered submodule (see .gitmodules)")
}

// ForSourceMissing returns hints when the palette directory cannot be read.
func ForSourceMissing(noSync bool) string {
	if noSync {
		return format("run without --no-sync to fetch the palettes submodule")
	}
	return format("set source.dir in the config or PALGEN_SOURCE_DIR")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/palgen.yaml or run 'palgen init'"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/palgen") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists the templates that do exist.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForStale returns the hint printed by `palgen check` on mismatch.
func ForStale() string {
	return format("run 'palgen generate' and commit the result")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
