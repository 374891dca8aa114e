package main

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPrintCommandUsage - Per-command help text
// ---------------------------------------------------------------------------

func TestPrintCommandUsage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd  string
		want []string
	}{
		{"generate", []string{"Usage: palgen [generate]", "--no-sync", "PALGEN_SOURCE_DIR"}},
		{"check", []string{"Usage: palgen check", "status 5"}},
		{"list", []string{"Usage: palgen list", "--preset"}},
		{"show", []string{"Usage: palgen show", "--highlight", "--style"}},
		{"init", []string{"Usage: palgen init", "--format", "--force"}},
		{"doctor", []string{"Usage: palgen doctor", "--json"}},
		{"completion", []string{"Usage: palgen completion <shell>"}},
		{"version", []string{"Usage: palgen version"}},
		{"help", []string{"Usage: palgen help"}},
		{"unknown", []string{"Commands:"}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			printCommandUsage(&buf, tt.cmd)
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("usage for %q missing %q", tt.cmd, want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPrintUsage - Every command is listed
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	for _, name := range commandNames() {
		if !strings.Contains(buf.String(), "  "+name+" ") {
			t.Errorf("main usage does not list %q", name)
		}
	}
}
