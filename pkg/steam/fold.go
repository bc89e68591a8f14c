package steam

import (
	"strings"

	"github.com/matzehuels/sudet/pkg/vdf"
)

// childFold returns the child of n whose key equals key under Unicode case
// folding. An exact match wins over a folded one.
func childFold(n *vdf.Node, key string) (*vdf.Node, bool) {
	if c, err := n.Child(key); err == nil {
		return c, true
	}
	for k, c := range n.All() {
		if strings.EqualFold(k, key) {
			return c, true
		}
	}
	return nil, false
}

// branchFold walks path from n with case-insensitive keys and returns the
// branch at its end.
func branchFold(n *vdf.Node, path ...string) (*vdf.Node, bool) {
	cur := n
	for _, key := range path {
		next, ok := childFold(cur, key)
		if !ok || !next.IsBranch() {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// valueFold returns the text of the leaf under key, or "".
func valueFold(n *vdf.Node, key string) string {
	c, ok := childFold(n, key)
	if !ok || !c.IsLeaf() {
		return ""
	}
	return c.Text()
}
