package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tracecov/internal/domain"
	m "github.com/mouse-blink/tracecov/internal/model"
)

var stepFrameFlag int

// stepCmd represents the step command.
var stepCmd = newStepCmd()

func newStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step <report>",
		Short: "Step through the traced path of a report",
		Long: `Step through the path recorded for each frame of the local trace.

The path is listed in report order, from the fault back toward its origin:
stepping forward moves toward the fault, stepping backward toward the origin.
Without a terminal the path of the selected frame is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Step(domain.StepArgs{Report: m.Path(args[0]), Frame: stepFrameFlag})
		},
	}
	cmd.Flags().IntVarP(&stepFrameFlag, "frame", "f", 0, "index of the frame to open")

	return cmd
}

func init() {
	rootCmd.AddCommand(stepCmd)
}
