// Package domain implements report parsing, annotation partitioning and path
// navigation, and the workflow that drives them.
package domain

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/tracecov/internal/adapter"
	"github.com/mouse-blink/tracecov/internal/controller"
	m "github.com/mouse-blink/tracecov/internal/model"
)

// Format selects how summaries and annotations are printed.
type Format string

// Supported output formats.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name. An empty name means FormatTable.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q, want %q or %q", name, FormatTable, FormatYAML)
	}
}

// SummaryArgs holds the arguments for Workflow.Summary.
type SummaryArgs struct {
	Report m.Path
	Format Format
	Out    io.Writer // destination of FormatYAML output
}

// AnnotateArgs holds the arguments for Workflow.Annotate.
type AnnotateArgs struct {
	Report  m.Path
	Output  m.Path // empty prints the annotations instead of saving them
	Threads int
	Scope   m.Scope // empty annotates both frames and files
	Format  Format
	Out     io.Writer // destination of FormatYAML output when Output is empty
}

// StepArgs holds the arguments for Workflow.Step.
type StepArgs struct {
	Report m.Path
	Frame  int // index of the first frame to show
}

// Workflow ties report loading, parsing and annotation to the UI and storage.
type Workflow interface {
	Load(report m.Path) (*m.AnalysisResult, error)
	Annotations(ctx context.Context, result *m.AnalysisResult, threads int, scope m.Scope) ([]m.AnnotationSet, error)
	Summary(args SummaryArgs) error
	Annotate(args AnnotateArgs) error
	Step(args StepArgs) error
}

type workflow struct {
	source adapter.ReportSource
	store  adapter.AnnotationStore
	ui     controller.UI
	parser Parser
	logger zerolog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	source adapter.ReportSource,
	store adapter.AnnotationStore,
	ui controller.UI,
	parser Parser,
	logger zerolog.Logger,
) Workflow {
	return &workflow{
		source: source,
		store:  store,
		ui:     ui,
		parser: parser,
		logger: logger,
	}
}

// Load reads and parses the report at path.
func (w *workflow) Load(report m.Path) (*m.AnalysisResult, error) {
	text, err := w.source.ReadReport(report)
	if err != nil {
		return nil, err
	}

	result, err := w.parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", report, err)
	}

	w.logger.Info().
		Str("report", string(report)).
		Int("frames", len(result.Root().Frames())).
		Int("files", len(result.Files())).
		Msg("report loaded")

	return result, nil
}

// Annotations partitions every frame and file of result, frames first in
// report order, using at most threads goroutines.
func (w *workflow) Annotations(ctx context.Context, result *m.AnalysisResult, threads int, scope m.Scope) ([]m.AnnotationSet, error) {
	if threads <= 0 {
		threads = 1
	}

	coverage := entitiesOf(result, scope)
	entities := make([]m.AnnotationSet, len(coverage))

	for i, e := range coverage {
		entities[i] = m.AnnotationSet{Scope: m.ScopeGlobal, File: e.File()}
		if frame, ok := e.(*m.FrameEntity); ok {
			entities[i].Scope = m.ScopeLocal
			entities[i].Function = frame.FunctionName()
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i := range entities {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			entities[i].Annotation = PartitionEntity(coverage[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entities, nil
}

func entitiesOf(result *m.AnalysisResult, scope m.Scope) []m.CoverageEntity {
	var out []m.CoverageEntity

	if scope == "" || scope == m.ScopeLocal {
		for _, frame := range result.Root().Frames() {
			out = append(out, frame)
		}
	}

	if scope == "" || scope == m.ScopeGlobal {
		for _, file := range result.Files() {
			out = append(out, file)
		}
	}

	return out
}

// Summary prints an overview of the frames and files in a report, or every
// entity's annotation as YAML.
func (w *workflow) Summary(args SummaryArgs) error {
	format, err := ParseFormat(string(args.Format))
	if err != nil {
		return err
	}

	result, err := w.Load(args.Report)
	if err != nil {
		return err
	}

	sets, err := w.Annotations(context.Background(), result, 1, "")
	if err != nil {
		return err
	}

	if format == FormatYAML {
		return w.writeYAML(args.Out, sets)
	}

	return w.ui.DisplaySummary(result, sets)
}

// Annotate computes the display categories of every entity and either saves
// them or hands them to the UI.
func (w *workflow) Annotate(args AnnotateArgs) error {
	switch args.Scope {
	case "", m.ScopeLocal, m.ScopeGlobal:
	default:
		return fmt.Errorf("unknown scope %q", args.Scope)
	}

	format, err := ParseFormat(string(args.Format))
	if err != nil {
		return err
	}

	result, err := w.Load(args.Report)
	if err != nil {
		return err
	}

	sets, err := w.Annotations(context.Background(), result, args.Threads, args.Scope)
	if err != nil {
		return err
	}

	if args.Output == "" {
		if format == FormatYAML {
			return w.writeYAML(args.Out, sets)
		}

		return w.ui.DisplayAnnotations(sets)
	}

	if err := w.store.SaveAnnotations(args.Output, sets); err != nil {
		return err
	}

	w.logger.Info().Str("output", string(args.Output)).Int("entities", len(sets)).Msg("annotations saved")

	return nil
}

func (w *workflow) writeYAML(out io.Writer, sets []m.AnnotationSet) error {
	if out == nil {
		return fmt.Errorf("yaml output needs a writer")
	}

	return w.store.WriteAnnotations(out, sets)
}

// Step opens the path navigator on the local trace of a report.
func (w *workflow) Step(args StepArgs) error {
	result, err := w.Load(args.Report)
	if err != nil {
		return err
	}

	frames := result.Root().Frames()
	if len(frames) == 0 {
		return fmt.Errorf("%s: report has no local trace", args.Report)
	}

	if args.Frame < 0 || args.Frame >= len(frames) {
		return fmt.Errorf("%s: frame %d out of range [0, %d]", args.Report, args.Frame, len(frames)-1)
	}

	sets, err := w.Annotations(context.Background(), result, 1, m.ScopeLocal)
	if err != nil {
		return err
	}

	annotations := make([]m.Annotation, len(sets))
	for i, set := range sets {
		annotations[i] = set.Annotation
	}

	return w.ui.RunNavigator(result, annotations, NewNavigator(), args.Frame)
}
