package vdf

import (
	"bufio"
	"io"
	"strings"
)

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)

// Serialize renders doc as VDF text. Each branch is written as its quoted
// key, then "{" and "}" on their own lines around its children; each leaf as
// its quoted key, two tabs and its quoted value. Children are indented by one
// tab per level and keep their original order. Parsing the result yields a
// Document equal to doc. A nil doc or root serializes as "".
func Serialize(doc *Document) string {
	if doc == nil {
		return ""
	}
	var b strings.Builder
	// strings.Builder never fails.
	_ = Encode(&b, doc.Node)
	return b.String()
}

// Encode writes the children of branch n to w in the format of [Serialize].
// It returns ErrNotBranch if n is a leaf. A nil n is an empty branch.
func Encode(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	if n.kind != KindBranch {
		return ErrNotBranch
	}
	bw := bufio.NewWriter(w)
	writeChildren(bw, n, 0)
	return bw.Flush()
}

func writeChildren(w *bufio.Writer, n *Node, depth int) {
	indent := strings.Repeat("\t", depth)
	for key, child := range n.All() {
		w.WriteString(indent)
		writeQuoted(w, key)
		switch child.kind {
		case KindLeaf:
			w.WriteString("\t\t")
			writeQuoted(w, child.value)
			w.WriteByte('\n')
		case KindBranch:
			w.WriteByte('\n')
			w.WriteString(indent + "{\n")
			writeChildren(w, child, depth+1)
			w.WriteString(indent + "}\n")
		}
	}
}

func writeQuoted(w *bufio.Writer, s string) {
	w.WriteByte('"')
	escaper.WriteString(w, s)
	w.WriteByte('"')
}

// String returns the VDF text of a branch, or the raw value of a leaf.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	if n.kind == KindLeaf {
		return n.value
	}
	var b strings.Builder
	_ = Encode(&b, n)
	return b.String()
}
