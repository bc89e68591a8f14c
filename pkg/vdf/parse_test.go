package vdf

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var nodeOpts = cmp.AllowUnexported(Node{})

func TestParseOrderPreserved(t *testing.T) {
	doc, err := Parse("\"A\" \"1\"\n\"B\" \"2\"\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	var got []string
	for k := range doc.Keys() {
		got = append(got, k)
	}
	if diff := cmp.Diff([]string{"A", "B"}, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNestedBranch(t *testing.T) {
	doc, err := Parse("\"root\"\n{\n  \"child\"\n  {\n    \"leaf\" \"value\"\n  }\n}\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := NewBranch().Set("root",
		NewBranch().Set("child",
			NewBranch().SetValue("leaf", "value")))
	if diff := cmp.Diff(want, doc.Node, nodeOpts); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}

	root, err := doc.Branch("root")
	if err != nil {
		t.Fatalf("Branch(root) error: %v", err)
	}
	if root.Len() != 1 {
		t.Errorf("root has %d children, want 1", root.Len())
	}
	v, err := doc.Lookup("root", "child", "leaf")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if v.Kind() != KindLeaf || v.Text() != "value" {
		t.Errorf("leaf = %v %q, want leaf %q", v.Kind(), v.Text(), "value")
	}
}

func TestParseComments(t *testing.T) {
	with := `"root"
{
	// ignore me
	"a"		"1"
  // another one
	"b"		"2" // trailing
}
// at the end`
	without := `"root"
{
	"a"		"1"
	"b"		"2"
}`
	a, err := Parse(with)
	if err != nil {
		t.Fatalf("Parse(with comments) error: %v", err)
	}
	b, err := Parse(without)
	if err != nil {
		t.Fatalf("Parse(without comments) error: %v", err)
	}
	if !Equal(a.Node, b.Node) {
		t.Errorf("comments changed the tree:\n%s\nvs\n%s", Serialize(a), Serialize(b))
	}
}

func TestParseEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quotes", `"key" "a \"quoted\" value"`, `a "quoted" value`},
		{"backslash", `"key" "C:\\Program Files (x86)\\Steam"`, `C:\Program Files (x86)\Steam`},
		{"newline and tab", `"key" "a\nb\tc"`, "a\nb\tc"},
		{"unknown escape kept", `"key" "a\qb"`, `a\qb`},
		{"multiline literal", "\"key\" \"line1\nline2\"", "line1\nline2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			got, err := doc.Value("key")
			if err != nil {
				t.Fatalf("Value() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Value() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseBareTokensAndConditionals(t *testing.T) {
	input := `root
{
	key value
	"win"	"1"	[$WIN32]
	"osx" [$OSX]
	{
		"x"	"y"
	}
	"url" "http://example.com"
}`
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := NewBranch().Set("root", NewBranch().
		SetValue("key", "value").
		SetValue("win", "1").
		Set("osx", NewBranch().SetValue("x", "y")).
		SetValue("url", "http://example.com"))
	if diff := cmp.Diff(want, doc.Node, nodeOpts); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNonASCIISpaceInBareToken(t *testing.T) {
	doc, err := Parse("root\n{\n\tname Zo\u00a0e\n\tnel a\u0085b\r\n}\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := NewBranch().Set("root", NewBranch().
		SetValue("name", "Zo\u00a0e").
		SetValue("nel", "a\u0085b"))
	if diff := cmp.Diff(want, doc.Node, nodeOpts); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	input := `"root"
{
	"a"	"1"
	"b"
	{
		"x"	"1"
	}
	"c"	"3"
	"a"	"2"
	"b"
	{
		"y"	"2"
		"x"	"9"
	}
}`
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := NewBranch().Set("root", NewBranch().
		SetValue("a", "2").
		Set("b", NewBranch().SetValue("x", "9").SetValue("y", "2")).
		SetValue("c", "3"))
	if diff := cmp.Diff(want, doc.Node, nodeOpts); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "// only a comment\n"} {
		doc, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", input, err)
		}
		if doc.Len() != 0 {
			t.Errorf("Parse(%q) has %d keys, want 0", input, doc.Len())
		}
	}
}

func TestParseEmptyBranch(t *testing.T) {
	doc, err := Parse(`"apps" {}`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	apps, err := doc.Branch("apps")
	if err != nil {
		t.Fatalf("Branch() error: %v", err)
	}
	if apps.Len() != 0 {
		t.Errorf("apps has %d children, want 0", apps.Len())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantPos Pos
		wantMsg string
	}{
		{"missing closing brace", `"key" { "nested" "value"`, Pos{1, 25}, "missing '}'"},
		{"dangling key", `"key"`, Pos{1, 6}, "expected value or '{'"},
		{"key before close", "\"root\"\n{\n\t\"key\"\n}", Pos{4, 1}, "expected value or '{'"},
		{"stray close at top level", "\"a\" \"1\"\n}", Pos{2, 1}, "unexpected '}'"},
		{"open in key position", `{ "a" "b" }`, Pos{1, 1}, "expected key"},
		{"unterminated string", "\"root\"\n{\n\t\"a\" \"b", Pos{3, 6}, "unterminated quoted string"},
		{"unterminated conditional", `"a" "b" [$WIN32`, Pos{1, 9}, "unterminated conditional"},
		{"extra close", `"a" { } }`, Pos{1, 9}, "unexpected '}'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse() = %v, want error", doc)
			}
			if doc != nil {
				t.Error("Parse() returned a partial document")
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("error %v does not wrap ErrSyntax", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if pe.Pos != tt.wantPos {
				t.Errorf("Pos = %v, want %v", pe.Pos, tt.wantPos)
			}
			if !strings.Contains(pe.Msg, tt.wantMsg) {
				t.Errorf("Msg = %q, want it to contain %q", pe.Msg, tt.wantMsg)
			}
		})
	}
}

func TestParseBytesBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`"a" "1"`)...)
	doc, err := ParseBytes(data)
	if err != nil {
		t.Fatalf("ParseBytes() error: %v", err)
	}
	if v, err := doc.Value("a"); err != nil || v != "1" {
		t.Errorf("Value(a) = %q, %v; want %q, nil", v, err, "1")
	}
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader("\"users\"\n{\n}\n"))
	if err != nil {
		t.Fatalf("ParseReader() error: %v", err)
	}
	if _, err := doc.Branch("users"); err != nil {
		t.Errorf("Branch(users) error: %v", err)
	}
}

func TestParseUnicode(t *testing.T) {
	doc, err := Parse("\"Zo\u00eb \u2713\" }")
	if err == nil {
		t.Fatalf("Parse() = %v, want error", doc)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %T is not a *ParseError", err)
	}
	// columns count runes
	if pe.Pos != (Pos{1, 9}) {
		t.Errorf("Pos = %v, want 1:9", pe.Pos)
	}
}
