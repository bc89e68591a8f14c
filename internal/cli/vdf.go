package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	serrors "github.com/matzehuels/sudet/pkg/errors"
	"github.com/matzehuels/sudet/pkg/steam"
	"github.com/matzehuels/sudet/pkg/vdf"
)

const formatYAML = "yaml"

// vdfCommand creates the vdf command group for working with single files.
func (c *CLI) vdfCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vdf",
		Short: "Inspect and convert VDF files",
		Long: `Work with individual VDF (Valve Data Format) text files.

Every subcommand takes a file path, or "-" to read standard input.
Nothing is ever written back to the input file.`,
	}

	cmd.AddCommand(c.vdfFmtCommand())
	cmd.AddCommand(c.vdfGetCommand())
	cmd.AddCommand(c.vdfKeysCommand())
	cmd.AddCommand(c.vdfConvertCommand())
	cmd.AddCommand(c.vdfDiffCommand())

	return cmd
}

// vdfFmtCommand creates the "vdf fmt" subcommand.
func (c *CLI) vdfFmtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Print a VDF file in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readVDF(cmd, args[0])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), vdf.Serialize(doc))
			return err
		},
	}
}

// vdfGetCommand creates the "vdf get" subcommand.
func (c *CLI) vdfGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <key>...",
		Short: "Print the value or section at a key path",
		Example: `  sudet vdf get loginusers.vdf users 76561197960287930 PersonaName
  sudet vdf get localconfig.vdf UserLocalConfigStore friends`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readVDF(cmd, args[0])
			if err != nil {
				return err
			}
			n, err := doc.Lookup(args[1:]...)
			if err != nil {
				return serrors.Wrap(serrors.ErrCodeKeyNotFound, err, "lookup %s", strings.Join(args[1:], "/"))
			}
			out := cmd.OutOrStdout()
			if n.IsLeaf() {
				_, err = fmt.Fprintln(out, n.Text())
				return err
			}
			return vdf.Encode(out, n)
		},
	}
}

// vdfKeysCommand creates the "vdf keys" subcommand.
func (c *CLI) vdfKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <file> [key...]",
		Short: "List the keys of a section",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readVDF(cmd, args[0])
			if err != nil {
				return err
			}
			n, err := doc.Lookup(args[1:]...)
			if err != nil {
				return serrors.Wrap(serrors.ErrCodeKeyNotFound, err, "lookup %s", strings.Join(args[1:], "/"))
			}
			if !n.IsBranch() {
				return serrors.New(serrors.ErrCodeInvalidInput, "%s is a value, not a section", strings.Join(args[1:], "/"))
			}
			out := cmd.OutOrStdout()
			for key := range n.Keys() {
				fmt.Fprintln(out, key)
			}
			return nil
		},
	}
}

// vdfConvertCommand creates the "vdf convert" subcommand.
func (c *CLI) vdfConvertCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a VDF file to JSON or YAML",
		Long: `Convert a VDF file to JSON or YAML. Key order is kept in both formats,
and all values are strings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readVDF(cmd, args[0])
			if err != nil {
				return err
			}
			data, err := convert(doc, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json or yaml")
	return cmd
}

func convert(doc *vdf.Document, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		raw, err := doc.MarshalJSON()
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	case formatYAML:
		return vdf.ToYAML(doc.Node)
	default:
		return nil, serrors.New(serrors.ErrCodeInvalidInput, "unknown format %q (want %s or %s)", format, formatJSON, formatYAML)
	}
}

// vdfDiffCommand creates the "vdf diff" subcommand.
func (c *CLI) vdfDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare two VDF files after formatting both",
		Long: `Compare two VDF files line by line after formatting both in canonical
form, so layout and comment differences are ignored.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readVDF(cmd, args[0])
			if err != nil {
				return err
			}
			b, err := readVDF(cmd, args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if vdf.Equal(a.Node, b.Node) {
				fmt.Fprintln(out, StyleDim.Render("no differences"))
				return nil
			}
			writeDiff(out, vdf.Serialize(a), vdf.Serialize(b))
			return nil
		},
	}
}

// writeDiff prints a line diff of a and b, prefixing removed lines with
// "-", added lines with "+" and unchanged lines with " ".
func writeDiff(w io.Writer, a, b string) {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				fmt.Fprintln(w, StyleError.Render("-")+line)
			case diffmatchpatch.DiffInsert:
				fmt.Fprintln(w, StyleSuccess.Render("+")+line)
			default:
				fmt.Fprintln(w, " "+line)
			}
		}
	}
}

// readVDF parses the file at path, or standard input for "-".
func readVDF(cmd *cobra.Command, path string) (*vdf.Document, error) {
	if path == "-" {
		doc, err := vdf.ParseReader(cmd.InOrStdin())
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrCodeInvalidVDF, err, "parse stdin")
		}
		return doc, nil
	}
	return steam.ReadDocument(path)
}
