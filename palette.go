package palgen

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/alnah/palgen/internal/fileutil"
)

// DefaultExtension is the suffix that selects palette files.
const DefaultExtension = ".pal"

// Palette is one palette file: its name (filename without extension) and
// its verbatim contents.
type Palette struct {
	Name     string
	Contents string
}

// Table is an ordered list of palettes, sorted by source filename.
type Table []Palette

// Names returns the palette names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, p := range t {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the contents of the named palette.
func (t Table) Lookup(name string) (string, bool) {
	for _, p := range t {
		if p.Name == name {
			return p.Contents, true
		}
	}
	return "", false
}

// ListPaletteFiles returns the names of the files in the root of fsys that
// end with ext, sorted ascending byte-wise. Directories and special files
// are skipped, as is a file named exactly ext (it would yield an empty name).
// A symlink is kept only when its target is a regular file; dangling links
// are skipped.
func ListPaletteFiles(fsys fs.FS, ext string) ([]string, error) {
	if err := fileutil.ValidateExtension(ext); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if len(name) <= len(ext) || !strings.HasSuffix(name, ext) {
			continue
		}
		switch mode := entry.Type(); {
		case mode.IsRegular():
		case mode&fs.ModeSymlink != 0:
			info, err := fs.Stat(fsys, name)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		default:
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// LoadTableFS reads every palette file in the root of fsys.
func LoadTableFS(fsys fs.FS, ext string) (Table, error) {
	files, err := ListPaletteFiles(fsys, ext)
	if err != nil {
		return nil, err
	}

	table := make(Table, 0, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
		}
		table = append(table, Palette{
			Name:     strings.TrimSuffix(file, ext),
			Contents: string(data),
		})
	}
	return table, nil
}

// LoadTable reads every palette file in dir.
// Returns ErrSourceRead when dir is missing or unreadable.
func LoadTable(dir, ext string) (Table, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrSourceRead, dir)
	}
	return LoadTableFS(os.DirFS(dir), ext)
}
