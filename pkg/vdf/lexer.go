package vdf

import (
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokString
	tokOpen
	tokClose
	tokCond
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokString:
		return "string"
	case tokOpen:
		return "'{'"
	case tokClose:
		return "'}'"
	case tokCond:
		return "conditional"
	default:
		return "token"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Pos
}

// lexer splits VDF text into tokens. pos is the position of the rune at off.
type lexer struct {
	src string
	off int
	pos Pos
}

func newLexer(src string) *lexer {
	return &lexer{src: src, pos: Pos{Line: 1, Col: 1}}
}

func (l *lexer) peekR() (rune, int) {
	if l.off >= len(l.src) {
		return -1, 0
	}
	return utf8.DecodeRuneInString(l.src[l.off:])
}

func (l *lexer) nextR() rune {
	r, size := l.peekR()
	if size == 0 {
		return -1
	}
	l.off += size
	if r == '\n' {
		l.pos.Line++
		l.pos.Col = 1
	} else {
		l.pos.Col++
	}
	return r
}

// skip consumes whitespace and // comments.
func (l *lexer) skip() {
	for {
		r, _ := l.peekR()
		switch {
		case r == -1:
			return
		case isSpace(r):
			l.nextR()
		case strings.HasPrefix(l.src[l.off:], "//"):
			for r != -1 && r != '\n' {
				r = l.nextR()
			}
		default:
			return
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skip()
	start := l.pos
	r, _ := l.peekR()
	switch r {
	case -1:
		return token{kind: tokEOF, pos: start}, nil
	case '{':
		l.nextR()
		return token{kind: tokOpen, text: "{", pos: start}, nil
	case '}':
		l.nextR()
		return token{kind: tokClose, text: "}", pos: start}, nil
	case '"':
		return l.quoted(start)
	case '[':
		return l.cond(start)
	default:
		return l.bare(start), nil
	}
}

func (l *lexer) quoted(start Pos) (token, error) {
	l.nextR()
	var b strings.Builder
	for {
		r := l.nextR()
		switch r {
		case -1:
			return token{}, &ParseError{Pos: start, Msg: "unterminated quoted string"}
		case '"':
			return token{kind: tokString, text: b.String(), pos: start}, nil
		case '\\':
			esc, _ := l.peekR()
			switch esc {
			case '"', '\\':
				l.nextR()
				b.WriteRune(esc)
			case 'n':
				l.nextR()
				b.WriteByte('\n')
			case 't':
				l.nextR()
				b.WriteByte('\t')
			default:
				b.WriteByte('\\')
			}
		default:
			b.WriteRune(r)
		}
	}
}

func (l *lexer) cond(start Pos) (token, error) {
	begin := l.off
	for {
		r := l.nextR()
		switch r {
		case -1, '\n':
			return token{}, &ParseError{Pos: start, Msg: "unterminated conditional"}
		case ']':
			return token{kind: tokCond, text: l.src[begin:l.off], pos: start}, nil
		}
	}
}

func (l *lexer) bare(start Pos) token {
	begin := l.off
	for {
		r, _ := l.peekR()
		if r == -1 || r == '"' || r == '{' || r == '}' || isSpace(r) {
			break
		}
		l.nextR()
	}
	return token{kind: tokString, text: l.src[begin:l.off], pos: start}
}

// isSpace reports whether r separates tokens. Only ASCII whitespace counts,
// so a bare token may contain U+00A0 and friends.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
