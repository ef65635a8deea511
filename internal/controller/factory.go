package controller

import (
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the UI for the command's streams. The navigator reads keys from
// the command input, so a report piped on stdin ("-") or a redirected output
// gets SimpleUI; only a terminal on both ends gets the Bubble Tea TUI.
func NewUI(cmd *cobra.Command) UI {
	if Interactive(cmd) {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// Interactive reports whether both the input and output of cmd are terminals.
func Interactive(cmd *cobra.Command) bool {
	return isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout())
}

type statter interface {
	Stat() (os.FileInfo, error)
}

func isTerminal(stream any) bool {
	s, ok := stream.(statter)
	if !ok {
		return false
	}

	info, err := s.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
