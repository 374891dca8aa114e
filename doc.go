// Package palgen turns a directory of gnuplot palette files into generated
// source code holding a static table from palette name to palette commands.
//
// # Quick Start
//
// Generate a C++ header from the palettes in gnuplot-palettes:
//
//	gen := palgen.New(palgen.WithSyncer(palgen.GitSyncer{}))
//	res, err := gen.Generate(ctx, palgen.Request{
//	    Root:      ".",
//	    SourceDir: "gnuplot-palettes",
//	    Output:    "sciplot/Palettes.hpp",
//	    Target: palgen.Target{
//	        Language:  palgen.LanguageCpp,
//	        Namespace: "sciplot",
//	        Table:     "palettes",
//	    },
//	})
//
// # Pipeline
//
//  1. Sync: a Syncer populates the source directory (git submodule update).
//  2. Enumerate: files ending in ".pal" are listed and sorted by name.
//  3. Load: each file becomes a Palette named after the file.
//  4. Render: names and contents are quoted for the target language and
//     fed to a text/template.
//  5. Write: the output file is replaced as a whole.
//
// Every stage before the write works in memory, so a failure leaves any
// previous output untouched.
//
// # Quoting
//
// Contents are written as raw literals by default (R"(...)" in C++,
// back-quoted in Go) so the generated table stays readable. Characters a
// raw literal cannot carry fall back to escapes. Every Quoter has an exact
// inverse, see Unquote.
//
// # Templates
//
// The built-in templates are "cpp" and "go". NewTemplateLoader layers a
// directory of {name}.tmpl files over them.
//
// # Errors
//
// Failures are classified with sentinel errors: ErrSync, ErrSyncUnavailable,
// ErrSourceRead, ErrRender, ErrInvalidTarget, ErrInvalidRequest,
// ErrWriteOutput and ErrStale. Use errors.Is to test for them.
package palgen
