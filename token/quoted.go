package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unquote decodes the quoted scalar at the start of d. It returns the
// decoded text and the number of bytes the scalar occupies, quotes
// included. d may span lines joined by '\n'; line breaks fold to a space,
// empty lines to newlines, and an escaped break in double quotes joins the
// lines. Trailing blanks of a line are dropped.
func Unquote(d string) (string, int, error) {
	if len(d) == 0 {
		return "", 0, ErrUnterminated
	}
	switch d[0] {
	case '\'':
		return singleQuoted(d)
	case '"':
		return doubleQuoted(d)
	}
	return "", 0, ErrUnterminated
}

func singleQuoted(d string) (string, int, error) {
	b := &strings.Builder{}
	ws := 0
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '\'' && i+1 < len(d) && d[i+1] == '\'':
			b.WriteString(d[i-ws : i])
			ws = 0
			b.WriteByte('\'')
			i += 2
		case c == '\'':
			b.WriteString(d[i-ws : i])
			return b.String(), i + 1, nil
		case c == ' ' || c == '\t':
			ws++
			i++
		case c == '\n':
			ws = 0
			i = fold(b, d, i+1, ' ')
		default:
			b.WriteString(d[i-ws : i+1])
			ws = 0
			i++
		}
	}
	return "", i, ErrUnterminated
}

func doubleQuoted(d string) (string, int, error) {
	b := &strings.Builder{}
	ws := 0
	i := 1
	for i < len(d) {
		r, sz := utf8.DecodeRuneInString(d[i:])
		if r == utf8.RuneError && sz <= 1 {
			return "", i, ErrBadUTF8
		}
		switch r {
		case ' ', '\t':
			ws++
			i++
			continue
		case '\n':
			ws = 0
			i = fold(b, d, i+1, ' ')
			continue
		}
		b.WriteString(d[i-ws : i])
		ws = 0
		i += sz
		switch r {
		case '"':
			return b.String(), i, nil
		case '\\':
			if i < len(d) && d[i] == '\n' {
				i = fold(b, d, i+1, 0)
				continue
			}
			n, err := escape(b, d[i:])
			if err != nil {
				return "", i, err
			}
			i += n
		default:
			if unicode.IsControl(r) {
				return "", i, ErrUnicodeControl
			}
			b.WriteRune(r)
		}
	}
	return "", i, ErrUnterminated
}

// fold handles the line break ending just before d[i] inside a quoted
// scalar. Leading blanks of the following lines are dropped. Each empty
// line yields a newline; without empty lines the break yields sep, or
// nothing when sep is 0. It returns the offset of the next content.
func fold(b *strings.Builder, d string, i int, sep byte) int {
	empty := 0
loop:
	for i < len(d) {
		switch d[i] {
		case ' ', '\t':
		case '\n':
			empty++
		default:
			break loop
		}
		i++
	}
	switch {
	case empty > 0:
		b.WriteString(strings.Repeat("\n", empty))
	case sep != 0:
		b.WriteByte(sep)
	}
	return i
}

// escape decodes the escape sequence following a backslash, returning the
// number of bytes consumed after the backslash.
func escape(b *strings.Builder, d string) (int, error) {
	if len(d) == 0 {
		return 0, ErrUnterminated
	}
	switch d[0] {
	case '0':
		b.WriteByte(0)
	case 'a':
		b.WriteByte('\a')
	case 'b':
		b.WriteByte('\b')
	case 't', '\t':
		b.WriteByte('\t')
	case 'n':
		b.WriteByte('\n')
	case 'v':
		b.WriteByte('\v')
	case 'f':
		b.WriteByte('\f')
	case 'r':
		b.WriteByte('\r')
	case 'e':
		b.WriteByte(0x1b)
	case ' ', '"', '/', '\\':
		b.WriteByte(d[0])
	case 'N':
		b.WriteRune('\u0085')
	case '_':
		b.WriteRune('\u00a0')
	case 'L':
		b.WriteRune('\u2028')
	case 'P':
		b.WriteRune('\u2029')
	case 'x':
		return hexRune(b, d, 2)
	case 'u':
		return hexRune(b, d, 4)
	case 'U':
		return hexRune(b, d, 8)
	default:
		return 0, ErrBadEscape
	}
	return 1, nil
}

func hexRune(b *strings.Builder, d string, n int) (int, error) {
	if len(d) < n+1 {
		return 0, ErrBadUnicode
	}
	digits := d[1 : n+1]
	if len(digits)%2 != 0 || !allHex(digits) {
		return 0, ErrBadUnicode
	}
	dst, err := hex.DecodeString(digits)
	if err != nil {
		return 0, ErrBadUnicode
	}
	var r rune
	for _, c := range dst {
		r = r<<8 | rune(c)
	}
	if !utf8.ValidRune(r) {
		return 0, ErrBadUnicode
	}
	b.WriteRune(r)
	return n + 1, nil
}

func allHex(d string) bool {
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}
