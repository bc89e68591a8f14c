package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sudet/pkg/cache"
	"github.com/matzehuels/sudet/pkg/inspect"
	"github.com/matzehuels/sudet/pkg/integrations/community"
	"github.com/matzehuels/sudet/pkg/integrations/store"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// parseCommand creates the parse command.
func (c *CLI) parseCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Display account details, friends, owned games and remote connections",
		Long: `Display data parsed from the local Steam files.

The account ID of the most recent user is resolved through
steamcommunity.com and game titles through the Steam store API. With
--offline the account ID is computed from the SteamID and games are
listed by application ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.Context(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or json")
	return cmd
}

func (c *CLI) runParse(ctx context.Context, format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatJSON)
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

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Reading Steam files...")
	runner.OnApp = func(done, total int) {
		spinner.Update("Looking up games (%d/%d)...", done, total)
	}
	spinner.Start()
	rep, err := runner.Run(ctx)
	if err != nil {
		stopSpinner(spinner, "Could not read Steam files")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Parsed %d friends and %d games", len(rep.Friends), len(rep.Games)))

	if format == formatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	writeReport(os.Stdout, rep)
	return nil
}

// newInspectRunner wires the web clients to a shared response cache.
// The caller closes the returned cache.
func (c *CLI) newInspectRunner() (*inspect.Runner, cache.Cache, error) {
	backend, err := newCache(c.flags.noCache)
	if err != nil {
		return nil, nil, err
	}
	ttl := c.config.CacheTTL.Duration
	return &inspect.Runner{
		Paths:    c.steamPaths(),
		Resolver: community.NewClient(backend, ttl),
		Apps:     store.NewClient(backend, ttl, c.config.Language),
		Logger:   c.Logger,
		Offline:  c.config.Offline,
		Refresh:  c.flags.refresh,
	}, backend, nil
}

// writeReport renders rep as the four report sections.
func writeReport(w io.Writer, rep *inspect.Report) {
	writeSection(w, "Account Details")
	writeKeyValue(w, "Steam ID", rep.Primary.SteamID)
	accountID := rep.AccountID
	if accountID != "" && rep.AccountIDSource == inspect.IDSourceLocal {
		accountID += StyleDim.Render(" (computed)")
	}
	writeKeyValue(w, "Account ID", accountID)
	writeKeyValue(w, "Account Name", rep.Primary.AccountName)
	writeKeyValue(w, "User Name", rep.Primary.PersonaName)
	if !rep.Primary.Timestamp.IsZero() {
		writeKeyValue(w, "Last Login", rep.Primary.Timestamp.Format("2006-01-02 15:04:05 MST"))
	}
	if len(rep.Users) > 1 {
		rows := make([][]string, 0, len(rep.Users))
		for _, u := range rep.Users {
			rows = append(rows, []string{u.AccountName, u.PersonaName, u.SteamID})
		}
		fmt.Fprintln(w, renderTable([]string{"Account Name", "User Name", "Steam ID"}, rows))
	}
	writeWarnings(w, rep, inspect.SectionAccount)

	writeSection(w, "Friends")
	if len(rep.Friends) > 0 {
		rows := make([][]string, 0, len(rep.Friends))
		for _, f := range rep.Friends {
			rows = append(rows, []string{f.Name, f.AccountID})
		}
		fmt.Fprintln(w, renderTable([]string{"Username", "Account ID"}, rows))
	}
	writeWarnings(w, rep, inspect.SectionFriends)

	writeSection(w, "Owned Games")
	if len(rep.Games) > 0 {
		rows := make([][]string, 0, len(rep.Games))
		for _, g := range rep.Games {
			name := g.Name
			if name == "" {
				name = "-"
			}
			rows = append(rows, []string{name, g.AppID})
		}
		fmt.Fprintln(w, renderTable([]string{"Game Title", "Application ID"}, rows))
	}
	if n := len(rep.SkippedApps); n > 0 {
		fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("  %d apps without store data skipped", n)))
	}
	writeWarnings(w, rep, inspect.SectionGames)

	writeSection(w, "Remote Connections")
	for _, rc := range rep.Remote {
		rows := make([][]string, 0, len(rc.Fields))
		for _, f := range rc.Fields {
			rows = append(rows, []string{f.Key, f.Value})
		}
		fmt.Fprintln(w, StyleHighlight.Render(rc.ID))
		fmt.Fprintln(w, renderTable([]string{"Field", "Value"}, rows))
	}
	for _, line := range rep.RemoteRaw {
		fmt.Fprintln(w, line)
	}
	writeWarnings(w, rep, inspect.SectionRemote)
}

func writeWarnings(w io.Writer, rep *inspect.Report, section inspect.Section) {
	for _, warn := range rep.WarningsFor(section) {
		writeWarning(w, warn.Message)
	}
}
