// Package git runs the git commands palgen depends on.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/alnah/palgen/internal/process"
)

// Sentinel errors for git operations.
var (
	ErrNotInstalled = errors.New("git executable not found")
	ErrNotRepo      = errors.New("not in a git repository")
	ErrCommand      = errors.New("git command failed")
)

// waitDelay bounds how long Wait blocks on stdio after the process is killed.
const waitDelay = 2 * time.Second

// Client provides git operations.
type Client struct {
	// Bin is the git executable name or path.
	Bin string
	// Stdout and Stderr receive the output of long-running commands
	// (submodule update). Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// NewClient creates a git client using the git found on PATH.
func NewClient() *Client {
	return &Client{Bin: "git"}
}

// LookPath resolves the git executable.
func (c *Client) LookPath() (string, error) {
	path, err := exec.LookPath(c.Bin)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotInstalled, err)
	}
	return path, nil
}

// Version returns the output of `git --version`.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.output(ctx, "", "--version")
	if err != nil {
		return "", err
	}
	return out, nil
}

// RepoRoot returns the top level of the repository containing dir.
func (c *Client) RepoRoot(ctx context.Context, dir string) (string, error) {
	out, err := c.output(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		if errors.Is(err, ErrNotInstalled) {
			return "", err
		}
		return "", ErrNotRepo
	}
	return out, nil
}

// SubmoduleUpdate runs `git submodule update --init` in dir, limited to
// paths when any are given.
func (c *Client) SubmoduleUpdate(ctx context.Context, dir string, paths ...string) error {
	args := []string{"submodule", "update", "--init"}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}

	var stderr bytes.Buffer
	cmd := c.command(ctx, dir, args...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = &stderr
	if c.Stderr != nil {
		cmd.Stderr = io.MultiWriter(c.Stderr, &stderr)
	}
	if err := cmd.Run(); err != nil {
		return c.wrap(ctx, err, stderr.String(), args)
	}
	return nil
}

func (c *Client) output(ctx context.Context, dir string, args ...string) (string, error) {
	var stderr bytes.Buffer
	cmd := c.command(ctx, dir, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", c.wrap(ctx, err, stderr.String(), args)
	}
	return strings.TrimSpace(string(out)), nil
}

func (c *Client) command(ctx context.Context, dir string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Bin, args...)
	cmd.Dir = dir
	process.Isolate(cmd)
	cmd.Cancel = func() error {
		process.KillProcessGroup(cmd.Process.Pid)
		return nil
	}
	cmd.WaitDelay = waitDelay
	return cmd
}

func (c *Client) wrap(ctx context.Context, err error, stderr string, args []string) error {
	if c.notInstalled(err) {
		return fmt.Errorf("%w: %v", ErrNotInstalled, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: git %s: %w", ErrCommand, strings.Join(args, " "), ctxErr)
	}
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = err.Error()
	}
	return fmt.Errorf("%w: git %s: %s", ErrCommand, strings.Join(args, " "), msg)
}

// notInstalled reports whether err means the executable itself is missing,
// as opposed to a missing working directory or a non-zero exit. A failed
// start names the binary even when the directory is at fault, so the
// binary is looked up again.
func (c *Client) notInstalled(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false
	}
	_, lookErr := exec.LookPath(c.Bin)
	return lookErr != nil
}
