package model

// Scope tells whether a report record describes a traced frame or aggregate file data.
type Scope string

const (
	// ScopeLocal marks a record belonging to the single traced execution path.
	ScopeLocal Scope = "local"
	// ScopeGlobal marks a record carrying per-file aggregate coverage.
	ScopeGlobal Scope = "global"
)

// Status is the overall execution status of an entity.
type Status string

const (
	// StatusExecuted marks an entity with at least one executed line.
	StatusExecuted Status = "executed"
	// StatusMaybe marks an entity with no executed but some possibly executed lines.
	StatusMaybe Status = "maybe"
	// StatusNotExecuted marks everything else.
	StatusNotExecuted Status = "not executed"
)

// StatusOf summarizes the coverage sets of e. Executed lines win over maybe lines.
func StatusOf(e CoverageEntity) Status {
	switch {
	case e.Executed().Len() > 0:
		return StatusExecuted
	case e.Maybe().Len() > 0:
		return StatusMaybe
	default:
		return StatusNotExecuted
	}
}

// CoverageEntity is implemented by every node carrying executed, not-executed and
// maybe-executed line sets.
type CoverageEntity interface {
	File() string
	Executed() LineSet
	NotExecuted() LineSet
	Maybe() LineSet
	AddExecuted(line int) error
	AddNotExecuted(line int) error
	AddMaybe(line int) error
}

// coverage holds the three sets shared by files and frames.
type coverage struct {
	executed    LineSet
	notExecuted LineSet
	maybe       LineSet
}

func newCoverage() coverage {
	return coverage{
		executed:    make(LineSet),
		notExecuted: make(LineSet),
		maybe:       make(LineSet),
	}
}

// Executed returns the lines classified as executed.
func (c *coverage) Executed() LineSet { return c.executed }

// NotExecuted returns the lines classified as not executed.
func (c *coverage) NotExecuted() LineSet { return c.notExecuted }

// Maybe returns the lines classified as possibly executed.
func (c *coverage) Maybe() LineSet { return c.maybe }

// AddExecuted records line as executed.
func (c *coverage) AddExecuted(line int) error { return c.executed.Add(line) }

// AddNotExecuted records line as not executed.
func (c *coverage) AddNotExecuted(line int) error { return c.notExecuted.Add(line) }

// AddMaybe records line as possibly executed.
func (c *coverage) AddMaybe(line int) error { return c.maybe.Add(line) }

// FileEntity is the aggregate coverage of one source file across the codebase.
type FileEntity struct {
	coverage
	file string
}

// NewFileEntity creates an empty file entity for path.
func NewFileEntity(path string) *FileEntity {
	return &FileEntity{coverage: newCoverage(), file: path}
}

// File returns the file path.
func (f *FileEntity) File() string { return f.file }

var (
	_ CoverageEntity = (*FileEntity)(nil)
	_ CoverageEntity = (*FrameEntity)(nil)
)
