package palgen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"unicode/utf8"
)

// goQuoter writes Go string literals.
type goQuoter struct {
	raw bool
}

func (q goQuoter) Quote(s string) string {
	if !q.raw {
		return strconv.Quote(s)
	}
	return goRawLiteral(s)
}

// goRawLiteral writes s as back-quoted segments. Runs a raw string cannot
// hold verbatim become interpreted segments, joined with +.
func goRawLiteral(s string) string {
	if s == "" {
		return "``"
	}

	var parts []string
	start, inRaw := 0, rawSafeAt(s, 0)
	flush := func(end int) {
		if inRaw {
			parts = append(parts, "`"+s[start:end]+"`")
		} else {
			parts = append(parts, strconv.Quote(s[start:end]))
		}
		start = end
	}

	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		if safe := rawSafeAt(s, i); safe != inRaw {
			flush(i)
			inRaw = safe
		}
		i += size
	}
	flush(len(s))

	return strings.Join(parts, " + ")
}

// rawSafeAt reports whether the rune at s[i:] survives a Go raw string.
// Raw strings drop carriage returns and cannot contain a backquote; the
// compiler rejects NUL, a byte order mark and invalid UTF-8 in source.
func rawSafeAt(s string, i int) bool {
	r, size := utf8.DecodeRuneInString(s[i:])
	switch {
	case r == utf8.RuneError && size <= 1:
		return false
	case r == '`', r == '\r', r == 0, r == '\uFEFF':
		return false
	}
	return true
}

func (goQuoter) Unquote(lit string) (string, error) {
	expr, err := parser.ParseExpr(lit)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnquote, err)
	}
	return evalStringExpr(expr)
}

// evalStringExpr folds a constant string expression made of literals,
// parentheses and + into its value.
func evalStringExpr(expr ast.Expr) (string, error) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.STRING {
			return "", fmt.Errorf("%w: %s literal is not a string", ErrUnquote, e.Kind)
		}
		s, err := strconv.Unquote(e.Value)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrUnquote, err)
		}
		return s, nil
	case *ast.ParenExpr:
		return evalStringExpr(e.X)
	case *ast.BinaryExpr:
		if e.Op != token.ADD {
			return "", fmt.Errorf("%w: unexpected operator %s", ErrUnquote, e.Op)
		}
		x, err := evalStringExpr(e.X)
		if err != nil {
			return "", err
		}
		y, err := evalStringExpr(e.Y)
		if err != nil {
			return "", err
		}
		return x + y, nil
	default:
		return "", fmt.Errorf("%w: unsupported expression %T", ErrUnquote, expr)
	}
}
