package palgen

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/alnah/palgen/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestListPaletteFiles - Selection and ordering
// ---------------------------------------------------------------------------

func TestListPaletteFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fsys fstest.MapFS
		ext  string
		want []string
	}{
		{
			name: "sorted by filename",
			fsys: fstest.MapFS{
				"jet.pal":     {Data: []byte("0 0 0 1 1 1\n")},
				"gray.pal":    {Data: []byte("0 0 0 0 1 1 1\n")},
				"accent.pal":  {Data: []byte("")},
				"README.md":   {Data: []byte("docs")},
				"jet.pal.bak": {Data: []byte("old")},
			},
			ext:  ".pal",
			want: []string{"accent.pal", "gray.pal", "jet.pal"},
		},
		{
			name: "byte-wise order",
			fsys: fstest.MapFS{
				"a.pal":   {},
				"a-b.pal": {},
				"B.pal":   {},
			},
			ext:  ".pal",
			want: []string{"B.pal", "a-b.pal", "a.pal"},
		},
		{
			name: "directories and bare extension skipped",
			fsys: fstest.MapFS{
				"moreland.pal":   {},
				"nested.pal/x":   {},
				".pal":           {},
				"subdir/jet.pal": {},
			},
			ext:  ".pal",
			want: []string{"moreland.pal"},
		},
		{
			name: "custom extension",
			fsys: fstest.MapFS{
				"jet.gp":  {},
				"jet.pal": {},
			},
			ext:  ".gp",
			want: []string{"jet.gp"},
		},
		{
			name: "empty directory",
			fsys: fstest.MapFS{},
			ext:  ".pal",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ListPaletteFiles(tt.fsys, tt.ext)
			if err != nil {
				t.Fatalf("ListPaletteFiles() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ListPaletteFiles() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListPaletteFiles_InvalidExtension(t *testing.T) {
	t.Parallel()

	_, err := ListPaletteFiles(fstest.MapFS{}, "pal")
	if !errors.Is(err, fileutil.ErrExtensionNoDot) {
		t.Errorf("ListPaletteFiles() error = %v, want ErrExtensionNoDot", err)
	}
}

func TestListPaletteFiles_Symlinks(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on Windows")
	}

	dir := t.TempDir()
	writePalette(t, dir, "jet.pal", "0 0 0 1 1 1\n")
	if err := os.Mkdir(filepath.Join(dir, "shared"), 0o755); err != nil {
		t.Fatal(err)
	}
	links := map[string]string{
		"alias.pal":    "jet.pal",
		"folder.pal":   "shared",
		"dangling.pal": "missing.pal",
	}
	for name, target := range links {
		if err := os.Symlink(target, filepath.Join(dir, name)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ListPaletteFiles(os.DirFS(dir), ".pal")
	if err != nil {
		t.Fatalf("ListPaletteFiles() error: %v", err)
	}
	want := []string{"alias.pal", "jet.pal"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListPaletteFiles() = %v, want %v", got, want)
	}

	table, err := LoadTable(dir, ".pal")
	if err != nil {
		t.Fatalf("LoadTable() error: %v", err)
	}
	if len(table) != 2 || table[0].Contents != table[1].Contents {
		t.Errorf("LoadTable() = %+v, want alias and jet with equal contents", table)
	}
}

// ---------------------------------------------------------------------------
// TestLoadTableFS - Names and verbatim contents
// ---------------------------------------------------------------------------

func TestLoadTableFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"jet.pal":  {Data: []byte("0 0 0 1 1 1\n")},
		"gray.pal": {Data: []byte("0 0 0 0 1 1 1\n")},
		"crlf.pal": {Data: []byte("a\r\nb\r\n")},
	}

	table, err := LoadTableFS(fsys, DefaultExtension)
	if err != nil {
		t.Fatalf("LoadTableFS() error: %v", err)
	}

	want := Table{
		{Name: "crlf", Contents: "a\r\nb\r\n"},
		{Name: "gray", Contents: "0 0 0 0 1 1 1\n"},
		{Name: "jet", Contents: "0 0 0 1 1 1\n"},
	}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("LoadTableFS() = %+v, want %+v", table, want)
	}

	if got := table.Names(); !reflect.DeepEqual(got, []string{"crlf", "gray", "jet"}) {
		t.Errorf("Names() = %v", got)
	}
	if got, ok := table.Lookup("gray"); !ok || got != "0 0 0 0 1 1 1\n" {
		t.Errorf("Lookup(gray) = %q, %v", got, ok)
	}
	if _, ok := table.Lookup("viridis"); ok {
		t.Error("Lookup(viridis) found a palette that does not exist")
	}
}

// ---------------------------------------------------------------------------
// TestLoadTable - Directory errors
// ---------------------------------------------------------------------------

func TestLoadTable(t *testing.T) {
	t.Parallel()

	t.Run("reads directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePalette(t, dir, "jet.pal", "0 0 0 1 1 1\n")

		table, err := LoadTable(dir, DefaultExtension)
		if err != nil {
			t.Fatalf("LoadTable() error: %v", err)
		}
		if len(table) != 1 || table[0].Name != "jet" {
			t.Errorf("LoadTable() = %+v", table)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := LoadTable(filepath.Join(t.TempDir(), "gnuplot-palettes"), DefaultExtension)
		if !errors.Is(err, ErrSourceRead) {
			t.Errorf("LoadTable() error = %v, want ErrSourceRead", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("LoadTable() error = %v, want to wrap os.ErrNotExist", err)
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePalette(t, dir, "jet.pal", "x")

		_, err := LoadTable(filepath.Join(dir, "jet.pal"), DefaultExtension)
		if !errors.Is(err, ErrSourceRead) {
			t.Errorf("LoadTable() error = %v, want ErrSourceRead", err)
		}
	})
}

func writePalette(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}
