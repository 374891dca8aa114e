package palgen

import (
	"fmt"

	"github.com/alnah/palgen/internal/ident"
)

// DefaultSource is the attribution link written above the table.
const DefaultSource = "https://github.com/Gnuplotting/gnuplot-palettes"

// Target describes the generated source file.
type Target struct {
	Language  Language
	Quote     QuoteStyle
	Namespace string // C++ namespace or Go package name
	Table     string // variable holding the table
	Header    string // license or attribution text, one comment line per line
	Source    string // where the palettes come from; empty omits the mention
	Template  string // template name; empty selects the one named after Language
}

// withDefaults fills zero fields. Namespace and Table have no default.
func (t Target) withDefaults() Target {
	if t.Quote == "" {
		t.Quote = QuoteRaw
	}
	if t.Template == "" {
		t.Template = string(t.Language)
	}
	return t
}

// Validate checks that the target can produce compilable source.
// Returns ErrInvalidTarget describing the first problem found.
func (t Target) Validate() error {
	t = t.withDefaults()

	if _, err := NewQuoter(t.Language, t.Quote); err != nil {
		return err
	}

	switch t.Language {
	case LanguageCpp:
		if !ident.IsCppNamespace(t.Namespace) {
			return fmt.Errorf("%w: namespace %q is not a C++ namespace name", ErrInvalidTarget, t.Namespace)
		}
		if !ident.IsCpp(t.Table) {
			return fmt.Errorf("%w: table %q is not a C++ identifier", ErrInvalidTarget, t.Table)
		}
	case LanguageGo:
		if !ident.IsGo(t.Namespace) {
			return fmt.Errorf("%w: package %q is not a Go package name", ErrInvalidTarget, t.Namespace)
		}
		if !ident.IsGo(t.Table) {
			return fmt.Errorf("%w: table %q is not a Go identifier", ErrInvalidTarget, t.Table)
		}
	}
	return nil
}
