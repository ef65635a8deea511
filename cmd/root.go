// Package cmd provides the root command and CLI setup for tracecov.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tracecov/internal/adapter"
	"github.com/mouse-blink/tracecov/internal/controller"
	"github.com/mouse-blink/tracecov/internal/domain"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var reportSource adapter.ReportSource
var annotationStore adapter.AnnotationStore
var parser domain.Parser
var workflow domain.Workflow
var ui controller.UI

var logLevelFlag string
var formatFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func init() {
	ui = controller.NewUI(rootCmd)
	reportSource = adapter.NewLocalReportSource(os.Stdin)
	annotationStore = adapter.NewAnnotationStore()
	parser = domain.NewParser(logger)
	workflow = domain.NewWorkflow(
		reportSource,
		annotationStore,
		ui,
		parser,
		logger,
	)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracecov",
		Short: "Inspect coverage trace reports",
		Long: `Tracecov reads the coverage/trace report written by an instrumentation tool
and shows it two ways:

  - the local trace: the frames of one traced execution and the path of
    source lines recorded in each frame
  - the global data: executed / not executed / maybe executed lines per file

Every line is placed in exactly one display category, so lines reported with
conflicting classifications stand out.

Report records have the form:
  function;file;local|global;executed;notExecuted;maybe;path`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if _, err := domain.ParseFormat(formatFlag); err != nil {
				return err
			}

			return setLogLevel(logLevelFlag)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&formatFlag, "format", string(domain.FormatTable), "output format of summary and annotate (table, yaml)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setLogLevel(level string) error {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(l)

	return nil
}
