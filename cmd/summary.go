package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tracecov/internal/domain"
	m "github.com/mouse-blink/tracecov/internal/model"
)

// summaryCmd represents the summary command.
var summaryCmd = newSummaryCmd()

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <report>",
		Short: "Summarize the frames and files of a report",
		Long:  "Summarize the traced frames and the per-file coverage of a report. Use - to read the report from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Summary(domain.SummaryArgs{
				Report: m.Path(args[0]),
				Format: domain.Format(formatFlag),
				Out:    cmd.OutOrStdout(),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
