package palgen

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alnah/palgen/internal/git"
)

// Syncer makes sure the palette source directory is populated before it is
// read. root is the project root and sourceDir the resolved source path.
type Syncer interface {
	Sync(ctx context.Context, root, sourceDir string) error
}

// SyncFunc adapts a function to the Syncer interface.
type SyncFunc func(ctx context.Context, root, sourceDir string) error

// Sync calls f.
func (f SyncFunc) Sync(ctx context.Context, root, sourceDir string) error {
	return f(ctx, root, sourceDir)
}

// NoopSyncer leaves the source directory as it is.
type NoopSyncer struct{}

// Sync does nothing.
func (NoopSyncer) Sync(context.Context, string, string) error { return nil }

// GitSyncer fetches palettes vendored as a git submodule by running
// `git submodule update --init` in the project root.
type GitSyncer struct {
	// Bin is the git executable. Empty means "git" from PATH.
	Bin string
	// Submodule restricts the update to one submodule path, relative to the
	// project root. Empty updates every submodule.
	Submodule string
	// Progress receives git's output. Nil discards it.
	Progress io.Writer
}

// Sync runs the submodule update. It is not retried.
//
// Returns ErrSyncUnavailable when git cannot be executed and ErrSync when
// the command fails.
func (s GitSyncer) Sync(ctx context.Context, root, _ string) error {
	client := git.NewClient()
	if s.Bin != "" {
		client.Bin = s.Bin
	}
	client.Stdout = s.Progress
	client.Stderr = s.Progress

	var paths []string
	if s.Submodule != "" {
		paths = append(paths, s.Submodule)
	}

	err := client.SubmoduleUpdate(ctx, root, paths...)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, git.ErrNotInstalled):
		return fmt.Errorf("%w: %w", ErrSyncUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrSync, err)
	}
}

// Compile-time interface checks.
var (
	_ Syncer = NoopSyncer{}
	_ Syncer = GitSyncer{}
	_ Syncer = SyncFunc(nil)
)
