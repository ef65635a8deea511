package model

import "fmt"

// TreeNode gives uniform parent/children traversal over the local trace tree.
type TreeNode interface {
	Parent() TreeNode
	Children() []TreeNode
}

// TraceRoot owns the frames of one traced execution, in report order.
type TraceRoot struct {
	frames []*FrameEntity
}

// NewTraceRoot creates an empty root.
func NewTraceRoot() *TraceRoot {
	return &TraceRoot{}
}

// Attach appends frame to the root. A frame can be attached only once.
func (r *TraceRoot) Attach(frame *FrameEntity) error {
	if frame.root != nil {
		return fmt.Errorf("%w: frame %s (%s)", ErrAlreadyAttached, frame.functionName, frame.file)
	}

	frame.root = r
	r.frames = append(r.frames, frame)

	return nil
}

// Frames returns the frames in report order.
func (r *TraceRoot) Frames() []*FrameEntity {
	return r.frames
}

// Parent always returns nil; the root has no parent.
func (r *TraceRoot) Parent() TreeNode { return nil }

// Children returns the frames as tree nodes.
func (r *TraceRoot) Children() []TreeNode {
	nodes := make([]TreeNode, len(r.frames))
	for i, f := range r.frames {
		nodes[i] = f
	}

	return nodes
}

// FrameEntity is one stack frame of the traced execution: a function, its file,
// coverage sets and the ordered path of traced lines.
type FrameEntity struct {
	coverage
	functionName string
	file         string
	steps        []*StepEntity
	root         *TraceRoot
}

// NewFrameEntity creates an unattached frame.
func NewFrameEntity(functionName, file string) *FrameEntity {
	return &FrameEntity{coverage: newCoverage(), functionName: functionName, file: file}
}

// FunctionName returns the name of the traced function.
func (f *FrameEntity) FunctionName() string { return f.functionName }

// File returns the path of the file holding the function.
func (f *FrameEntity) File() string { return f.file }

// Label names the frame by its function and the first line of its path,
// e.g. "deref:42". Frames without a path are labeled by function only.
func (f *FrameEntity) Label() string {
	if len(f.steps) == 0 {
		return f.functionName
	}

	return fmt.Sprintf("%s:%d", f.functionName, f.steps[0].line)
}

// Root returns the owning root, or nil while unattached.
func (f *FrameEntity) Root() *TraceRoot { return f.root }

// Attach appends step to the frame's path. A step can be attached only once.
func (f *FrameEntity) Attach(step *StepEntity) error {
	if step.frame != nil {
		return fmt.Errorf("%w: step at line %d", ErrAlreadyAttached, step.line)
	}

	step.frame = f
	f.steps = append(f.steps, step)

	return nil
}

// Steps returns the traced path in the order the tool reported it.
func (f *FrameEntity) Steps() []*StepEntity { return f.steps }

// Parent returns the owning root.
func (f *FrameEntity) Parent() TreeNode {
	if f.root == nil {
		return nil
	}

	return f.root
}

// Children returns the path steps as tree nodes.
func (f *FrameEntity) Children() []TreeNode {
	nodes := make([]TreeNode, len(f.steps))
	for i, s := range f.steps {
		nodes[i] = s
	}

	return nodes
}

// StepEntity is a single traced source line.
type StepEntity struct {
	line  int
	frame *FrameEntity
}

// NewStepEntity creates an unattached step for line, which must be >= 1.
func NewStepEntity(line int) (*StepEntity, error) {
	if line < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLine, line)
	}

	return &StepEntity{line: line}, nil
}

// Line returns the traced line number.
func (s *StepEntity) Line() int { return s.line }

// Frame returns the owning frame, or nil while unattached.
func (s *StepEntity) Frame() *FrameEntity { return s.frame }

// Parent returns the owning frame.
func (s *StepEntity) Parent() TreeNode {
	if s.frame == nil {
		return nil
	}

	return s.frame
}

// Children always returns nil; steps are leaves.
func (s *StepEntity) Children() []TreeNode { return nil }
