package vdf

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrSyntax is the error every [*ParseError] unwraps to.
	ErrSyntax = errors.New("vdf: syntax error")

	// ErrKeyNotFound is returned by lookups when a key is absent at that level.
	ErrKeyNotFound = errors.New("vdf: key not found")

	// ErrNotBranch is returned when a branch was requested but a leaf was found.
	ErrNotBranch = errors.New("vdf: not a branch")

	// ErrNotLeaf is returned when a leaf was requested but a branch was found.
	ErrNotLeaf = errors.New("vdf: not a leaf")
)

// Pos is a one-based line and column within the parsed text.
// Columns count runes, not bytes.
type Pos struct {
	Line int
	Col  int
}

// String returns the position in "line:col" form.
func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// ParseError describes malformed input.
type ParseError struct {
	Pos Pos
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vdf: line %d, col %d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// Unwrap returns [ErrSyntax].
func (e *ParseError) Unwrap() error { return ErrSyntax }

// KeyError reports a failed lookup of Key. Err is one of [ErrKeyNotFound],
// [ErrNotBranch] or [ErrNotLeaf].
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Key)
}

func (e *KeyError) Unwrap() error { return e.Err }
