package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and project fixtures
// ---------------------------------------------------------------------------

// testEnv is an Environment backed by buffers and a fixed process environment.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an environment whose git executable does not exist, so
// a test that forgets --no-sync fails with a sync error instead of running git.
func newTestEnv(t *testing.T, vars map[string]string) *testEnv {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	wd := t.TempDir()
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	return &testEnv{
		Environment: &Environment{
			Now:        func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
			Stdout:     stdout,
			Stderr:     stderr,
			Getenv:     func(k string) string { return vars[k] },
			Environ:    func() []string { return environ },
			Getwd:      func() (string, error) { return wd, nil },
			GitBin:     filepath.Join(wd, "no-git"),
			IsTerminal: func(io.Writer) bool { return false },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// samplePalettes are two small gnuplot palettes.
var samplePalettes = map[string]string{
	"jet.pal":     "# jet\nset palette defined (0 '#000080', 1 '#0000ff')\n",
	"magma.pal":   "# magma\nset palette defined (0 '#000004', 1 '#fcfdbf')\n",
	"README.md":   "not a palette\n",
	".gitignore":  "*.bak\n",
	"backup.pal~": "ignored\n",
}

// newProjectRoot creates a project root holding gnuplot-palettes/ with files.
func newProjectRoot(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "gnuplot-palettes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// runArgs runs the CLI with args after the program name.
func runArgs(env *testEnv, args ...string) int {
	return run(context.Background(), append([]string{"palgen"}, args...), env.Environment)
}
