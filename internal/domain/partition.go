package domain

import (
	m "github.com/mouse-blink/tracecov/internal/model"
)

// Partition splits three possibly overlapping coverage sets into seven pairwise
// disjoint sets whose union is executed ∪ notExecuted ∪ maybe.
func Partition(executed, notExecuted, maybe m.LineSet) m.Annotation {
	all := executed.Intersect(notExecuted).Intersect(maybe)
	execMaybe := executed.Intersect(maybe).Difference(all)
	execNotExec := executed.Intersect(notExecuted).Difference(all)
	notExecMaybe := notExecuted.Intersect(maybe).Difference(all)

	return m.Annotation{
		All:                 all,
		ExecutedMaybe:       execMaybe,
		ExecutedNotExecuted: execNotExec,
		NotExecutedMaybe:    notExecMaybe,
		ExecutedOnly:        executed.Difference(all, execNotExec, execMaybe),
		NotExecutedOnly:     notExecuted.Difference(all, execNotExec, notExecMaybe),
		MaybeOnly:           maybe.Difference(all, execMaybe, notExecMaybe),
	}
}

// PartitionEntity partitions the coverage sets of e.
func PartitionEntity(e m.CoverageEntity) m.Annotation {
	return Partition(e.Executed(), e.NotExecuted(), e.Maybe())
}
