package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sudet/pkg/artifacts"
	serrors "github.com/matzehuels/sudet/pkg/errors"
)

// extractCommand creates the extract command.
func (c *CLI) extractCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Copy Steam files, web cache and logs into an output directory",
		Long: `Copy loginusers.vdf, localconfig.vdf and remoteclients.vdf into
<out>/files, archive the web cache and the client logs as zip files, and
write <out>/manifest.json with SHA-256 digests of everything collected.

The output directory defaults to output_dir from the config file
("steam_artifacts" when unset).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = c.config.OutputDir
			}
			return c.runExtract(cmd.Context(), out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory")
	return cmd
}

func (c *CLI) runExtract(ctx context.Context, out string) error {
	if err := serrors.ValidateOutputDir(out); err != nil {
		return err
	}
	ok, err := c.confirm(c.flags.yes || c.config.Offline)
	if err != nil {
		return err
	}
	if !ok {
		printInfo("Aborted")
		return nil
	}

	runner, backend, err := c.newInspectRunner()
	if err != nil {
		return err
	}
	defer backend.Close()

	account, err := runner.RunAccount(ctx)
	if err != nil {
		return err
	}
	for _, w := range account.Warnings {
		printWarning("%s", w.Message)
	}

	printInfo("Extracting Steam artifacts to %s", StyleHighlight.Render(out))
	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Collecting files...")
	spinner.Start()
	m, err := artifacts.NewExtractor(runner.Paths, out, c.Logger).Extract(ctx, account.AccountID)
	if err != nil {
		stopSpinner(spinner, "Extraction failed")
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Collected %d items", len(m.Items)))

	for _, it := range m.Items {
		if it.OK() {
			printSuccess("%s %s", it.Name, StyleDim.Render(fmt.Sprintf("(%d files, %d bytes)", it.Files, it.Bytes)))
			printFile(it.Dest)
			continue
		}
		printError("%s: %s", it.Name, it.Error)
	}
	prog.done(fmt.Sprintf("Extracted %d of %d items", len(m.Items)-len(m.Failed()), len(m.Items)))

	printNewline()
	printDetail("Manifest: %s", m.Path())
	return nil
}
