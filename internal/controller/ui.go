// Package controller provides the presentation of parsed reports: tables for
// summaries and an interactive viewer for stepping through a traced path.
package controller

import (
	m "github.com/mouse-blink/tracecov/internal/model"
)

// Navigator is the path-stepping state the viewer drives.
type Navigator interface {
	Position() (*m.FrameEntity, int)
	CurrentStep() (*m.StepEntity, bool)
	SetPosition(frame *m.FrameEntity, index int) error
	StepForward()
	StepBackward()
	CanStepForward() bool
	CanStepBackward() bool
}

// UI defines how parsed reports are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplaySummary(result *m.AnalysisResult, sets []m.AnnotationSet) error
	DisplayAnnotations(sets []m.AnnotationSet) error
	// RunNavigator walks the local trace starting at frame index startFrame.
	// frameAnnotations holds one annotation per frame, in frame order.
	RunNavigator(result *m.AnalysisResult, frameAnnotations []m.Annotation, nav Navigator, startFrame int) error
}
