package vdf

import (
	"iter"
	"slices"
)

// Kind distinguishes leaf nodes from branch nodes.
type Kind int

const (
	// KindLeaf is a node holding a single string value.
	KindLeaf Kind = iota
	// KindBranch is a node holding ordered child nodes.
	KindBranch
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindBranch:
		return "branch"
	default:
		return "unknown"
	}
}

// Node is either a leaf or a branch. Use [NewLeaf] and [NewBranch] to create one.
//
// A Node must not be mutated while it is being read from other goroutines.
// Parsed documents are never mutated by this package after [Parse] returns.
type Node struct {
	kind     Kind
	value    string
	keys     []string
	children map[string]*Node
}

// NewLeaf returns a leaf node holding value.
func NewLeaf(value string) *Node {
	return &Node{kind: KindLeaf, value: value}
}

// NewBranch returns an empty branch node.
func NewBranch() *Node {
	return &Node{kind: KindBranch}
}

// Kind reports whether n is a leaf or a branch.
func (n *Node) Kind() Kind { return n.kind }

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool { return n.kind == KindLeaf }

// IsBranch reports whether n is a branch.
func (n *Node) IsBranch() bool { return n.kind == KindBranch }

// Text returns the value of a leaf, or "" for a branch.
func (n *Node) Text() string { return n.value }

// Len returns the number of immediate children of a branch, or 0 for a leaf.
func (n *Node) Len() int { return len(n.keys) }

// Set binds key to child in branch n, applying the duplicate-key rule:
// two branches merge, anything else is replaced. A new key is appended;
// an existing key keeps its position. Set on a leaf panics.
func (n *Node) Set(key string, child *Node) *Node {
	if n.kind != KindBranch {
		panic("vdf: Set on leaf node")
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	prev, ok := n.children[key]
	switch {
	case !ok:
		n.keys = append(n.keys, key)
		n.children[key] = child
	case prev.kind == KindBranch && child.kind == KindBranch:
		for k, c := range child.All() {
			prev.Set(k, c)
		}
	default:
		n.children[key] = child
	}
	return n
}

// SetValue is shorthand for n.Set(key, NewLeaf(value)).
func (n *Node) SetValue(key, value string) *Node {
	return n.Set(key, NewLeaf(value))
}

// Keys yields the keys of n's immediate children in insertion order.
// The sequence is empty for a leaf and may be ranged over repeatedly.
func (n *Node) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range n.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// All yields the key and child of each immediate child in insertion order.
func (n *Node) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, k := range n.keys {
			if !yield(k, n.children[k]) {
				return
			}
		}
	}
}

// KeyList returns the keys of n's immediate children as a new slice.
func (n *Node) KeyList() []string {
	return slices.Clone(n.keys)
}

// Child returns the child bound to key, of either kind.
func (n *Node) Child(key string) (*Node, error) {
	if c, ok := n.children[key]; ok {
		return c, nil
	}
	return nil, &KeyError{Key: key, Err: ErrKeyNotFound}
}

// Branch returns the child branch bound to key.
func (n *Node) Branch(key string) (*Node, error) {
	c, err := n.Child(key)
	if err != nil {
		return nil, err
	}
	if c.kind != KindBranch {
		return nil, &KeyError{Key: key, Err: ErrNotBranch}
	}
	return c, nil
}

// Value returns the string value of the leaf bound to key.
func (n *Node) Value(key string) (string, error) {
	c, err := n.Child(key)
	if err != nil {
		return "", err
	}
	if c.kind != KindLeaf {
		return "", &KeyError{Key: key, Err: ErrNotLeaf}
	}
	return c.value, nil
}

// Lookup walks path from n and returns the node at its end.
// An empty path returns n itself.
func (n *Node) Lookup(path ...string) (*Node, error) {
	cur, at := n, ""
	for _, key := range path {
		if cur.kind != KindBranch {
			return nil, &KeyError{Key: at, Err: ErrNotBranch}
		}
		next, err := cur.Child(key)
		if err != nil {
			return nil, err
		}
		cur, at = next, key
	}
	return cur, nil
}

// Equal reports whether a and b have the same kind, values and keys in the
// same order, recursively.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindLeaf:
		return a.value == b.value
	case KindBranch:
		if !slices.Equal(a.keys, b.keys) {
			return false
		}
		for _, k := range a.keys {
			if !Equal(a.children[k], b.children[k]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Document is the root branch of a parsed file.
type Document struct {
	*Node
}

// NewDocument wraps root as a Document. A nil root yields an empty document.
func NewDocument(root *Node) *Document {
	if root == nil {
		root = NewBranch()
	}
	return &Document{Node: root}
}
