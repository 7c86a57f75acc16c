package usda

import (
	"strings"

	"github.com/cockroachdb/errors"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokAsset
	tokPath
	tokPunct
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of file"
	case tokIdent:
		return "identifier"
	case tokNumber:
		return "number"
	case tokString:
		return "string"
	case tokAsset:
		return "asset path"
	case tokPath:
		return "path"
	case tokPunct:
		return "punctuation"
	default:
		return "token"
	}
}

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of file"
	case tokString:
		return "string " + quoteShort(t.text)
	case tokAsset:
		return "asset path @" + t.text + "@"
	case tokPath:
		return "path <" + t.text + ">"
	default:
		return quoteShort(t.text)
	}
}

func quoteShort(s string) string {
	if len(s) > 40 {
		s = s[:37] + "..."
	}
	return `"` + s + `"`
}

// lexer splits text-format layer content into tokens. Comments and
// whitespace, including newlines, are discarded.
type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.src); i++ {
		if l.src[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *lexer) errorf(format string, args ...any) error {
	return &ParseError{Line: l.line, Col: l.col, Err: errors.Wrapf(ErrSyntax, format, args...)}
}

// tokenize returns every token in the source followed by tokEOF.
func (l *lexer) tokenize() ([]token, error) {
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpaceAndComments()

	line, col := l.line, l.col
	mk := func(kind tokenKind, text string) token {
		return token{kind: kind, text: text, line: line, col: col}
	}

	if l.pos >= len(l.src) {
		return mk(tokEOF, ""), nil
	}

	c := l.src[l.pos]
	switch {
	case c == '"' || c == '\'':
		s, err := l.scanString(c)
		return mk(tokString, s), err
	case c == '@':
		s, err := l.scanAsset()
		return mk(tokAsset, s), err
	case c == '<':
		s, err := l.scanDelimited('>')
		return mk(tokPath, s), err
	case isDigit(c) || ((c == '-' || c == '+' || c == '.') && isDigit(l.peekByte(1))):
		return mk(tokNumber, l.scanNumber()), nil
	case c == '-' && isIdentStart(l.peekByte(1)):
		l.advance(1)
		return mk(tokIdent, "-"+l.scanIdent()), nil
	case isIdentStart(c):
		return mk(tokIdent, l.scanIdent()), nil
	case strings.IndexByte("()[]{}=,;:&", c) >= 0:
		l.advance(1)
		return mk(tokPunct, string(c)), nil
	default:
		return token{}, l.errorf("unexpected character %q", c)
	}
}

func (l *lexer) skipSpaceAndComments() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance(1)
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance(1)
			}
		default:
			return
		}
	}
}

func (l *lexer) scanString(quote byte) (string, error) {
	triple := l.peekByte(1) == quote && l.peekByte(2) == quote
	if triple {
		l.advance(3)
		delim := strings.Repeat(string(quote), 3)
		end := strings.Index(l.src[l.pos:], delim)
		if end < 0 {
			return "", l.errorf("unterminated triple-quoted string")
		}
		s := l.src[l.pos : l.pos+end]
		l.advance(end + 3)
		return s, nil
	}

	l.advance(1)
	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case quote:
			l.advance(1)
			return sb.String(), nil
		case '\n':
			return "", l.errorf("newline in string")
		case '\\':
			if l.pos+1 >= len(l.src) {
				return "", l.errorf("unterminated string")
			}
			sb.WriteByte(unescape(l.src[l.pos+1]))
			l.advance(2)
		default:
			sb.WriteByte(c)
			l.advance(1)
		}
	}
	return "", l.errorf("unterminated string")
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

// scanAsset reads @path@ or @@@path@@@.
func (l *lexer) scanAsset() (string, error) {
	if strings.HasPrefix(l.src[l.pos:], "@@@") {
		l.advance(3)
		end := strings.Index(l.src[l.pos:], "@@@")
		if end < 0 {
			return "", l.errorf("unterminated asset path")
		}
		s := l.src[l.pos : l.pos+end]
		l.advance(end + 3)
		return s, nil
	}
	return l.scanDelimited('@')
}

// scanDelimited reads from the opening delimiter at pos up to closer on the
// same line.
func (l *lexer) scanDelimited(closer byte) (string, error) {
	l.advance(1)
	start := l.pos
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case closer:
			s := l.src[start:l.pos]
			l.advance(1)
			return s, nil
		case '\n':
			return "", l.errorf("unterminated %q-delimited value", closer)
		}
		l.advance(1)
	}
	return "", l.errorf("unterminated %q-delimited value", closer)
}

func (l *lexer) scanNumber() string {
	start := l.pos
	if c := l.src[l.pos]; c == '-' || c == '+' {
		l.advance(1)
	}
	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
		l.advance(1)
	}
	if c := l.peekByte(0); c == 'e' || c == 'E' {
		next := l.peekByte(1)
		if isDigit(next) || ((next == '-' || next == '+') && isDigit(l.peekByte(2))) {
			l.advance(2)
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.advance(1)
			}
		}
	}
	return l.src[start:l.pos]
}

// scanIdent reads an identifier, including namespace (:) and property
// suffix (.) separators as in xformOp:translate.timeSamples.
func (l *lexer) scanIdent() string {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if isIdentStart(c) || isDigit(c) || c == ':' || c == '.' {
			l.advance(1)
			continue
		}
		break
	}
	return l.src[start:l.pos]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
