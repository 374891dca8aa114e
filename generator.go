package palgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cespare/xxhash"

	"github.com/alnah/palgen/internal/fileutil"
)

// outputPerm is the mode of the generated file.
const outputPerm os.FileMode = 0o644

// Generator runs the palette table pipeline: sync the source directory,
// load the palettes, render them and write the output file.
type Generator struct {
	syncer    Syncer
	loader    TemplateLoader
	extension string
}

// Option configures a Generator.
type Option func(*Generator)

// New creates a Generator. Without options it does not sync, reads ".pal"
// files and renders with the built-in templates.
func New(opts ...Option) *Generator {
	g := &Generator{
		syncer:    NoopSyncer{},
		loader:    defaultTemplateLoader,
		extension: DefaultExtension,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithSyncer sets the step that populates the source directory.
func WithSyncer(s Syncer) Option {
	return func(g *Generator) {
		if s != nil {
			g.syncer = s
		}
	}
}

// WithTemplateLoader sets where output templates come from.
func WithTemplateLoader(l TemplateLoader) Option {
	return func(g *Generator) {
		if l != nil {
			g.loader = l
		}
	}
}

// WithExtension sets the suffix that selects palette files.
// Panics if ext is not a valid extension (programmer error).
func WithExtension(ext string) Option {
	if err := fileutil.ValidateExtension(ext); err != nil {
		panic("palgen: WithExtension: " + err.Error())
	}
	return func(g *Generator) {
		g.extension = ext
	}
}

// Request names the inputs of one run. SourceDir and Output are resolved
// against Root unless absolute.
type Request struct {
	Root      string
	SourceDir string
	Output    string
	Target    Target
}

func (r Request) validate() error {
	if r.SourceDir == "" {
		return fmt.Errorf("%w: source directory is required", ErrInvalidRequest)
	}
	if r.Output == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidRequest)
	}
	return r.Target.Validate()
}

func (r Request) root() string {
	if r.Root == "" {
		return "."
	}
	return r.Root
}

// SourcePath returns the resolved palette source directory.
func (r Request) SourcePath() string { return fileutil.ResolveUnder(r.root(), r.SourceDir) }

// OutputPath returns the resolved output file path.
func (r Request) OutputPath() string { return fileutil.ResolveUnder(r.root(), r.Output) }

// Rendered is the in-memory result of Generator.Build.
type Rendered struct {
	Table  Table
	Source []byte
}

// Build syncs, loads and renders without touching the output file.
func (g *Generator) Build(ctx context.Context, req Request) (*Rendered, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	if err := g.syncer.Sync(ctx, req.root(), req.SourcePath()); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := LoadTable(req.SourcePath(), g.extension)
	if err != nil {
		return nil, err
	}

	src, err := Render(table, req.Target, g.loader)
	if err != nil {
		return nil, err
	}
	return &Rendered{Table: table, Source: src}, nil
}

// Result describes a completed Generate call.
type Result struct {
	Output   string   // resolved output path
	Palettes []string // palette names in table order
	Size     int      // bytes written
	Changed  bool     // output differs from what was on disk before
	Digest   uint64   // Digest of the written bytes
}

// Generate runs the full pipeline and replaces the output file. Nothing is
// written unless every earlier stage succeeded.
//
// Returns ErrSync or ErrSyncUnavailable from the sync step, ErrSourceRead
// when palettes cannot be read, ErrRender or ErrInvalidTarget when rendering
// fails and ErrWriteOutput when the output cannot be written.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	build, err := g.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	path := req.OutputPath()
	previous, err := os.ReadFile(path)
	changed := err != nil || !bytes.Equal(previous, build.Source)

	if err := fileutil.WriteFile(path, build.Source, outputPerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return &Result{
		Output:   path,
		Palettes: build.Table.Names(),
		Size:     len(build.Source),
		Changed:  changed,
		Digest:   Digest(build.Source),
	}, nil
}

// CheckResult describes a completed Check call.
type CheckResult struct {
	Output  string
	Want    uint64 // digest of the freshly rendered output
	Got     uint64 // digest of the file on disk; zero when Missing
	Missing bool
}

// Stale reports whether the file on disk differs from a fresh render.
func (r *CheckResult) Stale() bool {
	return r.Missing || r.Want != r.Got
}

// Check renders in memory and compares the result with the output file on
// disk. It never writes. A stale or missing file yields ErrStale along with
// the filled result.
func (g *Generator) Check(ctx context.Context, req Request) (*CheckResult, error) {
	build, err := g.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	res := &CheckResult{Output: req.OutputPath(), Want: Digest(build.Source)}
	current, err := os.ReadFile(res.Output)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		res.Missing = true
		return res, fmt.Errorf("%w: %s does not exist", ErrStale, res.Output)
	case err != nil:
		return nil, fmt.Errorf("reading existing output: %w", err)
	}

	res.Got = Digest(current)
	if res.Stale() {
		return res, fmt.Errorf("%w: %s", ErrStale, res.Output)
	}
	return res, nil
}

// Digest returns the xxhash64 of generated output.
func Digest(b []byte) uint64 {
	return xxhash.Sum64(b)
}
