package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tracecov/internal/model"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newTestUI()
	result, _ := sampleResult(t)

	sets := []m.AnnotationSet{{
		Scope:      m.ScopeGlobal,
		File:       "b.c",
		Annotation: m.Annotation{ExecutedMaybe: lineSet(5), NotExecutedOnly: lineSet(6)},
	}}

	require.NoError(t, ui.DisplaySummary(result, sets))

	out := buf.String()
	assert.Contains(t, out, "crash")
	assert.Contains(t, out, "caller")
	assert.Contains(t, out, "Frames 2")
	assert.Contains(t, out, "Total Files 1")
}

func TestSimpleUI_DisplaySummary_FileStatus(t *testing.T) {
	ui, buf := newTestUI()

	executed := m.NewFileEntity("run.c")
	require.NoError(t, executed.AddExecuted(1))
	require.NoError(t, executed.AddMaybe(2))

	maybe := m.NewFileEntity("maybe.c")
	require.NoError(t, maybe.AddMaybe(2))
	require.NoError(t, maybe.AddNotExecuted(3))

	cold := m.NewFileEntity("cold.c")
	require.NoError(t, cold.AddNotExecuted(3))

	files := []*m.FileEntity{executed, maybe, cold}
	require.NoError(t, ui.DisplaySummary(m.NewAnalysisResult(nil, files), nil))

	rows := map[string]string{}
	for _, line := range strings.Split(buf.String(), "\n") {
		for _, f := range files {
			if strings.Contains(line, f.File()) {
				rows[f.File()] = line
			}
		}
	}

	require.Len(t, rows, 3)
	assert.Contains(t, rows["run.c"], "| executed")
	assert.Contains(t, rows["maybe.c"], "| maybe")
	assert.Contains(t, rows["cold.c"], "not executed")
}

func TestSimpleUI_DisplaySummary_Empty(t *testing.T) {
	ui, buf := newTestUI()

	require.NoError(t, ui.DisplaySummary(m.NewAnalysisResult(nil, nil), nil))

	assert.Contains(t, buf.String(), "No local trace")
	assert.Contains(t, buf.String(), "No global file data")
}

func TestSimpleUI_DisplayAnnotations(t *testing.T) {
	ui, buf := newTestUI()

	sets := []m.AnnotationSet{
		{Scope: m.ScopeLocal, File: "a.c", Function: "crash", Annotation: m.Annotation{ExecutedOnly: lineSet(1, 2)}},
		{Scope: m.ScopeGlobal, File: "b.c", Annotation: m.Annotation{All: lineSet(7)}},
	}

	require.NoError(t, ui.DisplayAnnotations(sets))

	out := buf.String()
	assert.Contains(t, out, "crash (a.c)")
	assert.Contains(t, out, "1,2")
	assert.Contains(t, out, "executed+not-executed+maybe")
}

func TestSimpleUI_DisplayAnnotations_None(t *testing.T) {
	ui, buf := newTestUI()

	require.NoError(t, ui.DisplayAnnotations(nil))
	assert.Contains(t, buf.String(), "No entities to annotate")
}

func TestSimpleUI_RunNavigator_PrintsPathFromOrigin(t *testing.T) {
	ui, buf := newTestUI()
	result, annotations := sampleResult(t)
	nav := newStubNavigator()

	require.NoError(t, ui.RunNavigator(result, annotations, nav, 0))

	out := buf.String()
	header, body, ok := strings.Cut(out, "\n")
	require.True(t, ok)
	assert.Equal(t, "crash:30 (a.c)", header)

	i10 := strings.Index(body, "10")
	i20 := strings.Index(body, "20")
	i30 := strings.Index(body, "30")
	require.True(t, i10 >= 0 && i20 >= 0 && i30 >= 0, out)
	assert.Less(t, i10, i20)
	assert.Less(t, i20, i30)
	assert.Contains(t, body, "not-executed")

	_, index := nav.Position()
	assert.Equal(t, 0, index)
}

func TestSimpleUI_RunNavigator_EmptyPathAndBadFrame(t *testing.T) {
	ui, buf := newTestUI()
	result, annotations := sampleResult(t)

	require.NoError(t, ui.RunNavigator(result, annotations, newStubNavigator(), 1))
	assert.Contains(t, buf.String(), "No traced path")

	require.Error(t, ui.RunNavigator(result, annotations, newStubNavigator(), 5))
}
