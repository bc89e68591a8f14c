package vdf

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// MarshalJSON encodes a leaf as a JSON string and a branch as a JSON object
// whose members keep the branch's key order.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.kind == KindLeaf {
		return json.Marshal(n.value)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for key, child := range n.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := child.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToYAML encodes n as YAML, keeping the key order of every branch.
func ToYAML(n *Node) ([]byte, error) {
	return yaml.Marshal(yamlValue(n))
}

func yamlValue(n *Node) any {
	if n.kind == KindLeaf {
		return n.value
	}
	ms := make(yaml.MapSlice, 0, n.Len())
	for key, child := range n.All() {
		ms = append(ms, yaml.MapItem{Key: key, Value: yamlValue(child)})
	}
	return ms
}
