package cli

import (
	"github.com/spf13/cobra"
)

// rootCommand creates the bare root command. The -p and -e flags run parse
// and extract directly, in that order, for scripts written against the
// flag-only interface.
func (c *CLI) rootCommand() *cobra.Command {
	var parse, extract bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Parse and extract locally stored Steam user data",
		Long: `sudet reads the configuration files a Steam client keeps on disk.

It can display account details, friends, owned games and remote
connections (parse), and copy the raw files, web cache and logs into
an output directory for offline inspection (extract).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !parse && !extract {
				printNextStep("Try", appName+" --help")
				return nil
			}
			if parse {
				if err := c.runParse(cmd.Context(), formatText); err != nil {
					return err
				}
			}
			if extract {
				if err := c.runExtract(cmd.Context(), c.config.OutputDir); err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.Flags().BoolVarP(&parse, "parse", "p", false, "display parsed data (same as the parse command)")
	root.Flags().BoolVarP(&extract, "extract", "e", false, "extract artifacts (same as the extract command)")

	return root
}
