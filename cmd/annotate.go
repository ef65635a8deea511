package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tracecov/internal/domain"
	m "github.com/mouse-blink/tracecov/internal/model"
)

var annotateOutputFlag string
var annotateParallelFlag int
var annotateScopeFlag string

// annotateCmd represents the annotate command.
var annotateCmd = newAnnotateCmd()

func newAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate <report>",
		Short: "Assign every reported line to a display category",
		Long: `Split the executed, not executed and maybe executed lines of every frame and
file into seven disjoint display categories. The result is printed as a table
(or as YAML with --format yaml), or written as YAML to a file with --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Annotate(domain.AnnotateArgs{
				Report:  m.Path(args[0]),
				Output:  m.Path(annotateOutputFlag),
				Threads: annotateParallelFlag,
				Scope:   m.Scope(annotateScopeFlag),
				Format:  domain.Format(formatFlag),
				Out:     cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringVarP(&annotateOutputFlag, "output", "o", "", "write annotations as YAML to this file")
	cmd.Flags().IntVarP(&annotateParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringVarP(&annotateScopeFlag, "scope", "s", "", "only annotate local or global entities")

	return cmd
}

func init() {
	rootCmd.AddCommand(annotateCmd)
}
