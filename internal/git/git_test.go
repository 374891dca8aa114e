package git

// Notes:
// - Tests that need a real git skip when none is on PATH.
// - Cancellation uses a shell script standing in for git, so it only runs on
//   unix-like systems.

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// fakeGit writes an executable shell script that stands in for git.
func fakeGit(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a unix shell")
	}
	path := filepath.Join(t.TempDir(), "git")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestClient_NotInstalled - Missing executable classification
// ---------------------------------------------------------------------------

func TestClient_NotInstalled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bin  string
	}{
		{"name not on PATH", "palgen-no-such-git"},
		{"absolute path missing", filepath.Join(t.TempDir(), "missing", "git")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &Client{Bin: tt.bin}
			err := c.SubmoduleUpdate(context.Background(), t.TempDir())
			if !errors.Is(err, ErrNotInstalled) {
				t.Errorf("SubmoduleUpdate() error = %v, want ErrNotInstalled", err)
			}
			if _, err := c.Version(context.Background()); !errors.Is(err, ErrNotInstalled) {
				t.Errorf("Version() error = %v, want ErrNotInstalled", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestClient_SubmoduleUpdate - Argument passing and failures
// ---------------------------------------------------------------------------

func TestClient_SubmoduleUpdate(t *testing.T) {
	t.Parallel()

	t.Run("passes path restriction", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		record := filepath.Join(dir, "args.txt")
		c := &Client{Bin: fakeGit(t, `echo "$@" > "`+record+`"`)}

		if err := c.SubmoduleUpdate(context.Background(), dir, "gnuplot-palettes"); err != nil {
			t.Fatalf("SubmoduleUpdate() error: %v", err)
		}
		got, err := os.ReadFile(record)
		if err != nil {
			t.Fatal(err)
		}
		want := "submodule update --init -- gnuplot-palettes"
		if strings.TrimSpace(string(got)) != want {
			t.Errorf("args = %q, want %q", strings.TrimSpace(string(got)), want)
		}
	})

	t.Run("non-zero exit carries stderr", func(t *testing.T) {
		t.Parallel()

		c := &Client{Bin: fakeGit(t, `echo "fatal: not a git repository" >&2; exit 128`)}
		err := c.SubmoduleUpdate(context.Background(), t.TempDir())
		if !errors.Is(err, ErrCommand) {
			t.Fatalf("error = %v, want ErrCommand", err)
		}
		if !strings.Contains(err.Error(), "not a git repository") {
			t.Errorf("error %q does not include git stderr", err)
		}
	})

	t.Run("missing working directory is a command error", func(t *testing.T) {
		t.Parallel()

		c := &Client{Bin: fakeGit(t, "exit 0")}
		err := c.SubmoduleUpdate(context.Background(), filepath.Join(t.TempDir(), "missing"))
		if errors.Is(err, ErrNotInstalled) {
			t.Errorf("missing dir misreported as ErrNotInstalled: %v", err)
		}
		if !errors.Is(err, ErrCommand) {
			t.Errorf("error = %v, want ErrCommand", err)
		}
	})

	t.Run("cancellation kills the child", func(t *testing.T) {
		t.Parallel()

		c := &Client{Bin: fakeGit(t, "sleep 30")}
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := c.SubmoduleUpdate(ctx, t.TempDir())
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("error = %v, want DeadlineExceeded", err)
		}
		if elapsed := time.Since(start); elapsed > 10*time.Second {
			t.Errorf("SubmoduleUpdate returned after %v, child not killed", elapsed)
		}
	})
}

// ---------------------------------------------------------------------------
// TestClient_RepoRoot - Real git
// ---------------------------------------------------------------------------

func TestClient_RepoRoot(t *testing.T) {
	t.Parallel()
	requireGit(t)

	t.Run("inside repository", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if out, err := exec.Command("git", "init", "-q", dir).CombinedOutput(); err != nil {
			t.Fatalf("git init: %v\n%s", err, out)
		}
		sub := filepath.Join(dir, "scripts")
		if err := os.Mkdir(sub, 0o750); err != nil {
			t.Fatal(err)
		}

		got, err := NewClient().RepoRoot(context.Background(), sub)
		if err != nil {
			t.Fatalf("RepoRoot() error: %v", err)
		}
		wantInfo, _ := os.Stat(dir)
		gotInfo, err := os.Stat(got)
		if err != nil || !os.SameFile(wantInfo, gotInfo) {
			t.Errorf("RepoRoot() = %q, want %q", got, dir)
		}
	})

	t.Run("outside repository", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		c := NewClient()
		// GIT_CEILING_DIRECTORIES is process-wide; rely on temp dirs not being
		// inside a repository instead, and skip when they are.
		if _, err := c.RepoRoot(context.Background(), dir); err == nil {
			t.Skip("temp dir is inside a git repository")
		} else if !errors.Is(err, ErrNotRepo) {
			t.Errorf("RepoRoot() error = %v, want ErrNotRepo", err)
		}
	})
}

func TestClient_Version(t *testing.T) {
	t.Parallel()
	requireGit(t)

	v, err := NewClient().Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error: %v", err)
	}
	if !strings.HasPrefix(v, "git version") {
		t.Errorf("Version() = %q, want prefix %q", v, "git version")
	}
}
