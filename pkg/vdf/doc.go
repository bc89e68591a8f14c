// Package vdf reads and writes Valve's text key-value format (VDF).
//
// # Overview
//
// VDF is the nested key-value format the Steam client uses for files such as
// config/loginusers.vdf and userdata/<id>/config/localconfig.vdf:
//
//	"users"
//	{
//		"76561197960287930"
//		{
//			"AccountName"		"gaben"
//			"PersonaName"		"Gabe"
//		}
//	}
//
// [Parse] turns such text into a [Document], an ordered tree of [Node]
// values. Every Node is either a leaf (a string value) or a branch (an
// ordered mapping of keys to child Nodes); [Node.Kind] tells which. Key order
// is preserved so that [Serialize] reproduces the original ordering.
//
// # Grammar
//
// The input is a sequence of tokens separated by whitespace:
//
//   - quoted strings, with \" \\ \n and \t escapes
//   - bare braces { and }
//   - unquoted tokens, terminated by whitespace, a quote or a brace
//   - conditional tags such as [$WIN32], which are accepted and ignored
//
// A token starting with // begins a comment that runs to the end of the line.
// Malformed input yields a [*ParseError] carrying the line and column of the
// offending token; no partial Document is ever returned.
//
// # Duplicate keys
//
// When a key repeats within one branch and both values are branches, the
// later branch is merged into the earlier one. Otherwise the later value
// replaces the earlier one. Either way the key keeps the position of its
// first occurrence.
//
// # Traversal
//
// Lookups never panic on a missing key:
//
//	users, err := doc.Branch("users")
//	if errors.Is(err, vdf.ErrKeyNotFound) {
//	    // optional section absent
//	}
//	for id := range users.Keys() {
//	    name, _ := users.Lookup(id, "AccountName")
//	    ...
//	}
package vdf
