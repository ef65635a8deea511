package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/tracecov/internal/model"
)

// SimpleUI implements UI with plain text written to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints one table for the traced frames and one for the files.
func (s *SimpleUI) DisplaySummary(result *m.AnalysisResult, sets []m.AnnotationSet) error {
	frames := result.Root().Frames()

	if len(frames) == 0 {
		s.printf("No local trace\n")
	} else {
		table, buf := newTable([]string{"#", "Function", "File", "Steps", "Exec", "Not exec", "Maybe"})

		for i, frame := range frames {
			table.Append([]string{
				strconv.Itoa(i),
				frame.FunctionName(),
				frame.File(),
				strconv.Itoa(len(frame.Steps())),
				strconv.Itoa(frame.Executed().Len()),
				strconv.Itoa(frame.NotExecuted().Len()),
				strconv.Itoa(frame.Maybe().Len()),
			})
		}

		table.SetFooter([]string{"", fmt.Sprintf("Frames %d", len(frames)), "", "", "", "", ""})
		table.Render()
		s.printf("\n%s", buf.String())
	}

	files := result.Files()
	if len(files) == 0 {
		s.printf("No global file data\n")
		return nil
	}

	byFile := make(map[string]m.Annotation)

	for _, set := range sets {
		if set.Scope == m.ScopeGlobal {
			byFile[set.File] = set.Annotation
		}
	}

	table, buf := newTable([]string{"File", "Exec", "Not exec", "Maybe", "Conflicting", "Status"})

	for _, file := range files {
		a := byFile[file.File()]
		conflicting := a.All.Len() + a.ExecutedMaybe.Len() + a.ExecutedNotExecuted.Len() + a.NotExecutedMaybe.Len()

		table.Append([]string{
			file.File(),
			strconv.Itoa(file.Executed().Len()),
			strconv.Itoa(file.NotExecuted().Len()),
			strconv.Itoa(file.Maybe().Len()),
			strconv.Itoa(conflicting),
			string(m.StatusOf(file)),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(files)), "", "", "", "", ""})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayAnnotations prints the non-empty categories of every entity.
func (s *SimpleUI) DisplayAnnotations(sets []m.AnnotationSet) error {
	if len(sets) == 0 {
		s.printf("No entities to annotate\n")
		return nil
	}

	table, buf := newTable([]string{"Scope", "Entity", "Category", "Lines"})

	for _, set := range sets {
		for _, c := range m.Categories() {
			lines := set.Annotation.Lines(c)
			if lines.Len() == 0 {
				continue
			}

			table.Append([]string{string(set.Scope), entityName(set), c.String(), joinLines(lines.Lines())})
		}
	}

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// RunNavigator prints the path of the selected frame, one step per row, with
// the display category of each traced line. It is not interactive.
func (s *SimpleUI) RunNavigator(result *m.AnalysisResult, frameAnnotations []m.Annotation, nav Navigator, startFrame int) error {
	frames := result.Root().Frames()
	if startFrame < 0 || startFrame >= len(frames) {
		return fmt.Errorf("frame %d out of range", startFrame)
	}

	frame := frames[startFrame]
	s.printf("%s (%s)\n", frame.Label(), frame.File())

	if len(frame.Steps()) == 0 {
		s.printf("No traced path\n")
		return nil
	}

	if err := nav.SetPosition(frame, len(frame.Steps())-1); err != nil {
		return err
	}

	annotation := annotationAt(frameAnnotations, startFrame)
	table, buf := newTable([]string{"Step", "Line", "Category"})

	// Walk from the origin of the path toward the reported endpoint.
	for {
		_, index := nav.Position()
		step, _ := nav.CurrentStep()
		table.Append([]string{strconv.Itoa(index), strconv.Itoa(step.Line()), categoryLabel(annotation, step.Line())})

		if !nav.CanStepForward() {
			break
		}

		nav.StepForward()
	}

	table.Render()
	s.printf("%s", buf.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table, &buf
}

func entityName(set m.AnnotationSet) string {
	if set.Function == "" {
		return set.File
	}

	return fmt.Sprintf("%s (%s)", set.Function, set.File)
}

func joinLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = strconv.Itoa(line)
	}

	return strings.Join(parts, ",")
}

func categoryLabel(a m.Annotation, line int) string {
	c, ok := a.CategoryOf(line)
	if !ok {
		return "-"
	}

	return c.String()
}

func annotationAt(annotations []m.Annotation, i int) m.Annotation {
	if i < 0 || i >= len(annotations) {
		return m.Annotation{}
	}

	return annotations[i]
}
