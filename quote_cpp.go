package palgen

import (
	"fmt"
	"strconv"
	"strings"
)

// maxRawDelimiter is the longest d-char-sequence a C++ raw string accepts.
const maxRawDelimiter = 16

// cppQuoter writes C++ string literals.
type cppQuoter struct {
	raw bool
}

// cppSizedPrefix starts the explicit-length form used for contents with NUL
// bytes. A plain literal would convert through const char* and stop at the
// first NUL.
const cppSizedPrefix = "std::string("

func (q cppQuoter) Quote(s string) string {
	switch {
	case strings.IndexByte(s, 0) >= 0:
		return cppSizedPrefix + cppEscapedLiteral(s) + ", " + strconv.Itoa(len(s)) + ")"
	case q.raw && !strings.Contains(s, "\r"):
		return cppRawLiteral(s)
	default:
		return cppEscapedLiteral(s)
	}
}

// cppRawLiteral wraps s in R"delim(...)delim". The delimiter is the first of
// "", "pal", "pal1", "pal2"... whose closing sequence does not occur in s.
func cppRawLiteral(s string) string {
	delim := ""
	for n := 0; strings.Contains(s, ")"+delim+`"`); n++ {
		delim = "pal"
		if n > 0 {
			delim += strconv.Itoa(n)
		}
	}
	return `R"` + delim + "(" + s + ")" + delim + `"`
}

func cppEscapedLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '?':
			// Avoids trigraph sequences such as ??= in pre-C++17 compilers.
			b.WriteString(`\?`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\%03o`, c)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func (q cppQuoter) Unquote(lit string) (string, error) {
	switch {
	case strings.HasPrefix(lit, cppSizedPrefix):
		return cppUnquoteSized(lit)
	case strings.HasPrefix(lit, `R"`):
		return cppUnquoteRaw(lit)
	case strings.HasPrefix(lit, `"`):
		return cppUnquoteEscaped(lit)
	default:
		return "", fmt.Errorf("%w: not a C++ string literal", ErrUnquote)
	}
}

// cppUnquoteSized decodes std::string("...", N) and checks N.
func cppUnquoteSized(lit string) (string, error) {
	inner, ok := strings.CutSuffix(strings.TrimPrefix(lit, cppSizedPrefix), ")")
	if !ok {
		return "", fmt.Errorf("%w: unterminated std::string construction", ErrUnquote)
	}
	comma := strings.LastIndex(inner, ",")
	if comma < 0 {
		return "", fmt.Errorf("%w: std::string construction has no length", ErrUnquote)
	}
	size, err := strconv.Atoi(strings.TrimSpace(inner[comma+1:]))
	if err != nil {
		return "", fmt.Errorf("%w: invalid length: %w", ErrUnquote, err)
	}
	s, err := cppUnquoteEscaped(strings.TrimSpace(inner[:comma]))
	if err != nil {
		return "", err
	}
	if len(s) != size {
		return "", fmt.Errorf("%w: length %d does not match %d decoded bytes", ErrUnquote, size, len(s))
	}
	return s, nil
}

func cppUnquoteRaw(lit string) (string, error) {
	open := strings.IndexByte(lit, '(')
	if open < 0 {
		return "", fmt.Errorf("%w: raw literal has no opening parenthesis", ErrUnquote)
	}
	delim := lit[2:open]
	if len(delim) > maxRawDelimiter || strings.ContainsAny(delim, " ()\\\t\v\f\n\"") {
		return "", fmt.Errorf("%w: invalid raw delimiter %q", ErrUnquote, delim)
	}

	closing := ")" + delim + `"`
	body := lit[open+1:]
	end := strings.Index(body, closing)
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated raw literal", ErrUnquote)
	}
	if end+len(closing) != len(body) {
		return "", fmt.Errorf("%w: trailing text after raw literal", ErrUnquote)
	}
	return body[:end], nil
}

func cppUnquoteEscaped(lit string) (string, error) {
	if len(lit) < 2 || lit[len(lit)-1] != '"' {
		return "", fmt.Errorf("%w: unterminated literal", ErrUnquote)
	}
	body := lit[1 : len(lit)-1]

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch c {
		case '"', '\n':
			return "", fmt.Errorf("%w: unescaped %q at offset %d", ErrUnquote, c, i+1)
		case '\\':
		default:
			b.WriteByte(c)
			continue
		}

		i++
		if i >= len(body) {
			return "", fmt.Errorf("%w: dangling backslash", ErrUnquote)
		}
		switch e := body[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '\\', '"', '\'', '?':
			b.WriteByte(e)
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, n := 0, 0
			for n < 3 && i+n < len(body) && body[i+n] >= '0' && body[i+n] <= '7' {
				v = v*8 + int(body[i+n]-'0')
				n++
			}
			if v > 0xff {
				return "", fmt.Errorf("%w: octal escape out of range", ErrUnquote)
			}
			b.WriteByte(byte(v))
			i += n - 1
		case 'x':
			v, n := 0, 0
			for i+1+n < len(body) && isHex(body[i+1+n]) {
				v = v*16 + hexValue(body[i+1+n])
				n++
				if v > 0xff {
					return "", fmt.Errorf("%w: hex escape out of range", ErrUnquote)
				}
			}
			if n == 0 {
				return "", fmt.Errorf("%w: empty hex escape", ErrUnquote)
			}
			b.WriteByte(byte(v))
			i += n
		default:
			return "", fmt.Errorf("%w: unknown escape \\%c", ErrUnquote, e)
		}
	}
	return b.String(), nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) int {
	switch {
	case c >= 'a':
		return int(c-'a') + 10
	case c >= 'A':
		return int(c-'A') + 10
	default:
		return int(c - '0')
	}
}
