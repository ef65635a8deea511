package model

// AnalysisResult is the outcome of one parse: the local trace tree and the
// aggregate file entities, in the order their files first appeared.
type AnalysisResult struct {
	root  *TraceRoot
	files []*FileEntity
	index map[string]*FileEntity
}

// NewAnalysisResult pairs a root with its file entities. Later duplicates of a
// file path are dropped.
func NewAnalysisResult(root *TraceRoot, files []*FileEntity) *AnalysisResult {
	if root == nil {
		root = NewTraceRoot()
	}

	res := &AnalysisResult{root: root, index: make(map[string]*FileEntity, len(files))}
	for _, f := range files {
		if _, ok := res.index[f.File()]; ok {
			continue
		}

		res.index[f.File()] = f
		res.files = append(res.files, f)
	}

	return res
}

// Root returns the local trace tree.
func (a *AnalysisResult) Root() *TraceRoot { return a.root }

// Files returns the global file entities.
func (a *AnalysisResult) Files() []*FileEntity {
	out := make([]*FileEntity, len(a.files))
	copy(out, a.files)

	return out
}

// File looks up the aggregate entity for path.
func (a *AnalysisResult) File(path string) (*FileEntity, bool) {
	f, ok := a.index[path]
	return f, ok
}
