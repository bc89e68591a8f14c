package steam

import (
	"github.com/matzehuels/sudet/pkg/vdf"
)

// Field is one key/value pair of a remote client entry.
// Keys of nested sections are joined with "/".
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RemoteClient is a Remote Play peer recorded in remoteclients.vdf.
type RemoteClient struct {
	ID     string  `json:"id"`
	Fields []Field `json:"fields"`
}

// Get returns the value of the field named key.
func (c RemoteClient) Get(key string) (string, bool) {
	for _, f := range c.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// RemoteClients lists the client entries under each top-level section of a
// parsed remoteclients.vdf. Leaf entries next to the clients are ignored.
func RemoteClients(doc *vdf.Document) []RemoteClient {
	var out []RemoteClient
	for _, section := range doc.All() {
		if !section.IsBranch() {
			continue
		}
		for id, entry := range section.All() {
			if !entry.IsBranch() {
				continue
			}
			out = append(out, RemoteClient{ID: id, Fields: flatten(nil, "", entry)})
		}
	}
	return out
}

func flatten(dst []Field, prefix string, n *vdf.Node) []Field {
	for k, c := range n.All() {
		key := k
		if prefix != "" {
			key = prefix + "/" + k
		}
		if c.IsBranch() {
			dst = flatten(dst, key, c)
			continue
		}
		dst = append(dst, Field{Key: key, Value: c.Text()})
	}
	return dst
}
