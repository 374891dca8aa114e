package main

import (
	"errors"
	"os"

	"github.com/alnah/palgen"
	"github.com/alnah/palgen/internal/assets"
	"github.com/alnah/palgen/internal/config"
	"github.com/alnah/palgen/internal/fileutil"
)

// Exit codes for palgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Output generated or up to date
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Source unreadable, output unwritable
	ExitSync    = 4 // git submodule update failed or git missing
	ExitStale   = 5 // check: output differs from a fresh render
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, palgen.ErrStale) {
		return ExitStale
	}

	// Sync errors (exit 4)
	if errors.Is(err, palgen.ErrSync) ||
		errors.Is(err, palgen.ErrSyncUnavailable) {
		return ExitSync
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrUnknownPreset) ||
		errors.Is(err, palgen.ErrInvalidTarget) ||
		errors.Is(err, palgen.ErrInvalidRequest) ||
		errors.Is(err, palgen.ErrInvalidTemplateDir) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, fileutil.ErrExtensionEmpty) ||
		errors.Is(err, fileutil.ErrExtensionNoDot) ||
		errors.Is(err, fileutil.ErrExtensionPathTraversal) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrConfigExists) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, palgen.ErrSourceRead) ||
		errors.Is(err, palgen.ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
