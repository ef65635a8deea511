package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tracecov/internal/model"
)

// stubNavigator is a minimal Navigator used to keep controller tests free of
// the domain package.
type stubNavigator struct {
	frame *m.FrameEntity
	index int
}

func newStubNavigator() *stubNavigator { return &stubNavigator{index: -1} }

func (s *stubNavigator) Position() (*m.FrameEntity, int) { return s.frame, s.index }

func (s *stubNavigator) CurrentStep() (*m.StepEntity, bool) {
	if s.frame == nil || s.index < 0 {
		return nil, false
	}

	return s.frame.Steps()[s.index], true
}

func (s *stubNavigator) SetPosition(frame *m.FrameEntity, index int) error {
	if frame == nil && index != -1 {
		return errors.New("bad position")
	}

	if frame != nil && (index < 0 || index >= len(frame.Steps())) {
		return errors.New("bad position")
	}

	s.frame, s.index = frame, index

	return nil
}

func (s *stubNavigator) StepForward() {
	if s.CanStepForward() {
		s.index--
	}
}

func (s *stubNavigator) StepBackward() {
	if s.CanStepBackward() {
		s.index++
	}
}

func (s *stubNavigator) CanStepForward() bool { return s.frame != nil && s.index >= 1 }

func (s *stubNavigator) CanStepBackward() bool {
	return s.frame != nil && s.index <= len(s.frame.Steps())-2
}

func buildFrame(t *testing.T, root *m.TraceRoot, function, file string, path ...int) *m.FrameEntity {
	t.Helper()

	frame := m.NewFrameEntity(function, file)

	for _, line := range path {
		step, err := m.NewStepEntity(line)
		require.NoError(t, err)
		require.NoError(t, frame.Attach(step))
	}

	require.NoError(t, root.Attach(frame))

	return frame
}

func sampleResult(t *testing.T) (*m.AnalysisResult, []m.Annotation) {
	t.Helper()

	root := m.NewTraceRoot()
	f1 := buildFrame(t, root, "crash", "a.c", 30, 20, 10)
	require.NoError(t, f1.AddExecuted(10))
	require.NoError(t, f1.AddExecuted(20))
	require.NoError(t, f1.AddNotExecuted(30))
	buildFrame(t, root, "caller", "b.c")

	file := m.NewFileEntity("b.c")
	require.NoError(t, file.AddExecuted(5))
	require.NoError(t, file.AddMaybe(5))
	require.NoError(t, file.AddNotExecuted(6))

	annotations := []m.Annotation{
		{ExecutedOnly: lineSet(10, 20), NotExecutedOnly: lineSet(30)},
		{},
	}

	return m.NewAnalysisResult(root, []*m.FileEntity{file}), annotations
}

// lineSet builds a set from lines known to be valid.
func lineSet(lines ...int) m.LineSet {
	s := make(m.LineSet, len(lines))
	for _, line := range lines {
		s[line] = struct{}{}
	}

	return s
}
