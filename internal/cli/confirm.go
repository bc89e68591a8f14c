package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// onlineWarning is shown before commands that contact Steam web services.
var onlineWarning = []string{
	"WARNING: This tool will perform several requests to online Steam services",
	"in order to identify file locations and artifact details.",
}

// errNotInteractive is returned when a prompt is needed but stdin is not a terminal.
var errNotInteractive = errors.New("stdin is not a terminal; pass --yes to continue without the prompt")

// =============================================================================
// confirmModel - y/n prompt
// =============================================================================

// confirmModel is the bubbletea model for a yes/no question.
type confirmModel struct {
	lines    []string
	answered bool
	yes      bool
}

func newConfirmModel(lines ...string) confirmModel {
	return confirmModel{lines: lines}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.answered, m.yes = true, true
		return m, tea.Quit
	case "n", "q", "esc", "ctrl+c", "enter":
		m.answered, m.yes = true, false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}
	var b strings.Builder
	b.WriteString(renderWarningBox(m.lines...))
	b.WriteString("\n\n")
	b.WriteString(StyleValue.Render("Continue? "))
	b.WriteString(StyleDim.Render("(y/n)"))
	b.WriteString("\n")
	return b.String()
}

// confirm asks the user to accept the online warning. It returns true
// without asking when skip is set.
func (c *CLI) confirm(skip bool) (bool, error) {
	if skip {
		return true, nil
	}
	if !isTerminal(os.Stdin) {
		return false, errNotInteractive
	}
	return runConfirm(os.Stdin, os.Stdout, onlineWarning...)
}

func runConfirm(in io.Reader, out io.Writer, lines ...string) (bool, error) {
	p := tea.NewProgram(newConfirmModel(lines...), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	return ok && m.yes, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
