package vdf

import (
	"bytes"
	"fmt"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse converts VDF text into a Document. Pairs appear in the document in
// source order. On malformed input Parse returns a *ParseError and no
// Document.
func Parse(text string) (*Document, error) {
	p := &parser{lex: newLexer(text)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	root := NewBranch()
	if err := p.pairs(root, nil); err != nil {
		return nil, err
	}
	return NewDocument(root), nil
}

// ParseBytes parses data, ignoring a leading UTF-8 byte order mark.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(string(bytes.TrimPrefix(data, utf8BOM)))
}

// ParseReader reads r to the end and parses its contents.
func ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// skipConds drops any conditional tags at the current position.
func (p *parser) skipConds() error {
	for p.tok.kind == tokCond {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// pairs reads key/value pairs into dst until end of input, or until the
// closing brace when open is the position of the enclosing '{'.
func (p *parser) pairs(dst *Node, open *Pos) error {
	for {
		switch p.tok.kind {
		case tokEOF:
			if open != nil {
				return p.errorf("missing '}' for '{' at %s", open)
			}
			return nil
		case tokClose:
			if open == nil {
				return p.errorf("unexpected '}'")
			}
			return p.advance()
		case tokString:
			if err := p.pair(dst); err != nil {
				return err
			}
		default:
			return p.errorf("unexpected %s, expected key", p.tok.kind)
		}
	}
}

func (p *parser) pair(dst *Node) error {
	key := p.tok.text
	if err := p.advance(); err != nil {
		return err
	}
	if err := p.skipConds(); err != nil {
		return err
	}

	switch p.tok.kind {
	case tokString:
		dst.Set(key, NewLeaf(p.tok.text))
		if err := p.advance(); err != nil {
			return err
		}
		return p.skipConds()
	case tokOpen:
		open := p.tok.pos
		if err := p.advance(); err != nil {
			return err
		}
		child := NewBranch()
		if err := p.pairs(child, &open); err != nil {
			return err
		}
		dst.Set(key, child)
		return nil
	default:
		return p.errorf("expected value or '{' after key %q, found %s", key, p.tok.kind)
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.tok.pos, Msg: fmt.Sprintf(format, args...)}
}
