package palgen

import "fmt"

// Language selects the syntax of the generated source.
type Language string

// Supported output languages.
const (
	LanguageCpp Language = "cpp"
	LanguageGo  Language = "go"
)

// QuoteStyle selects how palette contents are written as literals.
type QuoteStyle string

// Supported quoting styles.
const (
	// QuoteRaw keeps the contents readable using the language's raw string
	// form, falling back to escapes only where the raw form cannot hold a
	// character.
	QuoteRaw QuoteStyle = "raw"
	// QuoteEscaped writes an ordinary double-quoted literal.
	QuoteEscaped QuoteStyle = "escaped"
)

// Languages lists the supported languages.
func Languages() []Language { return []Language{LanguageCpp, LanguageGo} }

// QuoteStyles lists the supported quoting styles.
func QuoteStyles() []QuoteStyle { return []QuoteStyle{QuoteRaw, QuoteEscaped} }

// Quoter turns a string into a source literal and back.
// For every string s, Unquote(Quote(s)) returns s.
type Quoter interface {
	Quote(s string) string
	Unquote(lit string) (string, error)
}

// NewQuoter returns the Quoter for a language and style.
// Returns ErrInvalidTarget for unknown values.
func NewQuoter(lang Language, style QuoteStyle) (Quoter, error) {
	if style != QuoteRaw && style != QuoteEscaped {
		return nil, fmt.Errorf("%w: unknown quote style %q", ErrInvalidTarget, style)
	}
	raw := style == QuoteRaw

	switch lang {
	case LanguageCpp:
		return cppQuoter{raw: raw}, nil
	case LanguageGo:
		return goQuoter{raw: raw}, nil
	default:
		return nil, fmt.Errorf("%w: unknown language %q", ErrInvalidTarget, lang)
	}
}

// Unquote decodes a literal produced by any quoting style of lang.
func Unquote(lang Language, lit string) (string, error) {
	q, err := NewQuoter(lang, QuoteRaw)
	if err != nil {
		return "", err
	}
	return q.Unquote(lit)
}
