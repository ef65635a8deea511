package domain

import (
	"fmt"

	m "github.com/mouse-blink/tracecov/internal/model"
)

// Navigator tracks the current frame and step while walking a traced path.
//
// A path is reported from the fault back toward its origin, so stepping
// "forward" moves to a lower index and stepping "backward" to a higher one.
type Navigator struct {
	frame *m.FrameEntity
	index int
}

// NewNavigator returns a navigator with no frame selected.
func NewNavigator() *Navigator {
	return &Navigator{index: -1}
}

// Position returns the current frame and step index. The frame is nil and the
// index -1 when nothing is selected.
func (n *Navigator) Position() (*m.FrameEntity, int) {
	return n.frame, n.index
}

// CurrentStep returns the step at the current position.
func (n *Navigator) CurrentStep() (*m.StepEntity, bool) {
	if n.frame == nil || n.index < 0 || n.index >= len(n.frame.Steps()) {
		return nil, false
	}

	return n.frame.Steps()[n.index], true
}

// SetPosition moves to step index of frame. A nil frame must come with index -1.
// The state is left unchanged on error.
func (n *Navigator) SetPosition(frame *m.FrameEntity, index int) error {
	if frame == nil {
		if index != -1 {
			return fmt.Errorf("%w: index %d without a frame", ErrInvalidPosition, index)
		}
	} else if steps := len(frame.Steps()); index < 0 || steps == 0 || index > steps-1 {
		return fmt.Errorf("%w: index %d in frame %s with %d steps", ErrInvalidPosition, index, frame.FunctionName(), steps)
	}

	n.frame, n.index = frame, index

	return nil
}

// Reset clears the selection.
func (n *Navigator) Reset() {
	n.frame, n.index = nil, -1
}

// Step moves delta steps along the current frame's path. Moves past either
// end are ignored.
func (n *Navigator) Step(delta int) {
	if n.frame == nil {
		return
	}

	last := len(n.frame.Steps()) - 1
	newIndex := min(n.index, last) + delta

	if newIndex < 0 || newIndex > last {
		return
	}

	_ = n.SetPosition(n.frame, newIndex)
}

// StepForward moves one step toward the start of the reported path.
func (n *Navigator) StepForward() {
	n.Step(-1)
}

// StepBackward moves one step toward the end of the reported path.
func (n *Navigator) StepBackward() {
	n.Step(1)
}

// CanStepForward reports whether StepForward would move.
func (n *Navigator) CanStepForward() bool {
	return n.frame != nil && n.index >= 1
}

// CanStepBackward reports whether StepBackward would move.
func (n *Navigator) CanStepBackward() bool {
	return n.frame != nil && len(n.frame.Steps()) > 0 && n.index <= len(n.frame.Steps())-2
}
