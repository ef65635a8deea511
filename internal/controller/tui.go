package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/tracecov/internal/model"
)

// TUI implements UI with an interactive Bubble Tea navigator. Summaries and
// annotation tables are printed the same way SimpleUI prints them.
type TUI struct {
	*SimpleUI
	input   io.Reader
	output  io.Writer
	options []tea.ProgramOption
}

// NewTUI creates a new TUI bound to the command's input and output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		input:    cmd.InOrStdin(),
		output:   cmd.OutOrStdout(),
		options:  []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// RunNavigator opens the interactive path viewer and blocks until the user quits.
func (t *TUI) RunNavigator(result *m.AnalysisResult, frameAnnotations []m.Annotation, nav Navigator, startFrame int) error {
	model, err := newNavigatorModel(result, frameAnnotations, nav, startFrame)
	if err != nil {
		return err
	}

	return t.runModel(model)
}

func (t *TUI) runModel(model tea.Model) error {
	opts := append([]tea.ProgramOption{tea.WithInput(t.input), tea.WithOutput(t.output)}, t.options...)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("navigator: %w", err)
	}

	if nm, ok := final.(navigatorModel); ok && nm.err != nil {
		return nm.err
	}

	return nil
}
