package vdf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const loginUsers = `"users"
{
	"76561197960287930"
	{
		"AccountName"		"gaben"
		"PersonaName"		"Rabscuttle"
		"RememberPassword"		"1"
		"MostRecent"		"1"
		"Timestamp"		"1700000000"
	}
}
`

func TestSerializeFormat(t *testing.T) {
	doc := NewDocument(NewBranch().Set("root", NewBranch().
		SetValue("leaf", "value").
		Set("child", NewBranch().SetValue("a", `say "hi"`))))

	want := "\"root\"\n" +
		"{\n" +
		"\t\"leaf\"\t\t\"value\"\n" +
		"\t\"child\"\n" +
		"\t{\n" +
		"\t\t\"a\"\t\t\"say \\\"hi\\\"\"\n" +
		"\t}\n" +
		"}\n"
	if diff := cmp.Diff(want, Serialize(doc)); diff != "" {
		t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeCanonicalIsStable(t *testing.T) {
	doc, err := Parse(loginUsers)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := Serialize(doc); got != loginUsers {
		t.Errorf("Serialize() of canonical input changed it:\n%s", got)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := map[string]string{
		"login users": loginUsers,
		"order":       "\"A\" \"1\"\n\"B\" \"2\"\n",
		"comments and bare tokens": `// header
root {
	key value // trailing
	"empty" {}
	"path" "C:\\Steam\\steamapps"
}`,
		"escapes":    `"k" "tab\there \"quote\" back\\slash new\nline odd\q"`,
		"empty":      "",
		"multi root": "\"a\" { \"b\" \"c\" }\n\"d\" \"e\"",
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			again, err := Parse(Serialize(doc))
			if err != nil {
				t.Fatalf("Parse(Serialize()) error: %v\n%s", err, Serialize(doc))
			}
			if diff := cmp.Diff(doc.Node, again.Node, nodeOpts); diff != "" {
				t.Errorf("round trip mismatch (-first +second):\n%s", diff)
			}
		})
	}
}

func TestEncodeLeaf(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, NewLeaf("x")); !errors.Is(err, ErrNotBranch) {
		t.Errorf("Encode(leaf) error = %v, want ErrNotBranch", err)
	}
}

func TestSerializeNil(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
	}{
		{"nil document", nil},
		{"zero document", &Document{}},
		{"empty root", NewDocument(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Serialize(tt.doc); got != "" {
				t.Errorf("Serialize() = %q, want empty", got)
			}
		})
	}

	var buf bytes.Buffer
	if err := Encode(&buf, nil); err != nil || buf.Len() != 0 {
		t.Errorf("Encode(nil) = %v, wrote %q", err, buf.String())
	}
	var n *Node
	if got := n.String(); got != "" {
		t.Errorf("nil String() = %q, want empty", got)
	}
}

func TestNodeString(t *testing.T) {
	if got := NewLeaf("v").String(); got != "v" {
		t.Errorf("leaf String() = %q, want %q", got, "v")
	}
	if got := NewBranch().SetValue("k", "v").String(); got != "\"k\"\t\t\"v\"\n" {
		t.Errorf("branch String() = %q", got)
	}
}
