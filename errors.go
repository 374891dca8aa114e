package palgen

import "errors"

// Sentinel errors for library operations.
var (
	// Source acquisition errors.
	ErrSync            = errors.New("palette source sync failed")
	ErrSyncUnavailable = errors.New("palette source sync unavailable")

	// I/O errors.
	ErrSourceRead  = errors.New("failed to read palette source")
	ErrWriteOutput = errors.New("failed to write output file")

	// Rendering errors.
	ErrInvalidTarget = errors.New("invalid output target")
	ErrRender        = errors.New("failed to render palette table")
	ErrUnquote       = errors.New("invalid string literal")

	// Request and check errors.
	ErrInvalidRequest = errors.New("invalid generate request")
	ErrStale          = errors.New("generated output is out of date")
)
