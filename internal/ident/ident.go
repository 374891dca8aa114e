// Package ident checks and derives identifiers for generated code.
package ident

import (
	"go/token"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// C++ identifiers are restricted to ASCII here; the generated header must
	// compile with any toolchain.
	cppIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	// Namespaces may be nested with "::".
	cppNamespace = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(::[A-Za-z_][A-Za-z0-9_]*)*$`)
	nonWord      = regexp.MustCompile(`[^a-z0-9_]+`)
)

var cppKeywords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "asm": true, "auto": true,
	"bool": true, "break": true, "case": true, "catch": true, "char": true,
	"class": true, "const": true, "constexpr": true, "continue": true,
	"default": true, "delete": true, "do": true, "double": true, "else": true,
	"enum": true, "explicit": true, "export": true, "extern": true,
	"false": true, "float": true, "for": true, "friend": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "mutable": true,
	"namespace": true, "new": true, "noexcept": true, "not": true,
	"nullptr": true, "operator": true, "or": true, "private": true,
	"protected": true, "public": true, "register": true, "return": true,
	"short": true, "signed": true, "sizeof": true, "static": true,
	"struct": true, "switch": true, "template": true, "this": true,
	"throw": true, "true": true, "try": true, "typedef": true,
	"typename": true, "union": true, "unsigned": true, "using": true,
	"virtual": true, "void": true, "volatile": true, "while": true,
}

// IsGo reports whether s is a valid, non-keyword Go identifier.
func IsGo(s string) bool {
	return token.IsIdentifier(s)
}

// IsGoExported reports whether s is a Go identifier visible outside its package.
func IsGoExported(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}

// IsCpp reports whether s is a plain C++ identifier that is not a keyword.
func IsCpp(s string) bool {
	return cppIdent.MatchString(s) && !cppKeywords[s]
}

// IsCppNamespace reports whether s is a possibly nested C++ namespace name.
func IsCppNamespace(s string) bool {
	if !cppNamespace.MatchString(s) {
		return false
	}
	for _, part := range strings.Split(s, "::") {
		if cppKeywords[part] {
			return false
		}
	}
	return true
}

// PackageName derives a Go package name from a directory name: accents are
// stripped, the result is lowercased and anything outside [a-z0-9_] dropped.
// Returns "" when nothing usable remains.
//
//	"gnuplot-palettes" -> "gnuplotpalettes"
//	"Paléttes"         -> "palettes"
//	"2d"               -> "p2d"
func PackageName(dir string) string {
	s := strings.ToLower(removeAccents(dir))
	s = nonWord.ReplaceAllString(s, "")
	s = strings.Trim(s, "_")
	if s == "" {
		return ""
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "p" + s
	}
	if token.IsKeyword(s) {
		s += "_"
	}
	return s
}

// removeAccents removes diacritical marks from unicode characters.
func removeAccents(s string) string {
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	for _, r := range decomposed {
		if !unicode.Is(unicode.Mn, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
