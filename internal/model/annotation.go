package model

// Category is one of the seven disjoint display categories a line can fall into.
type Category int

// Categories in display order.
const (
	CategoryAll Category = iota
	CategoryExecutedMaybe
	CategoryExecutedNotExecuted
	CategoryNotExecutedMaybe
	CategoryExecuted
	CategoryNotExecuted
	CategoryMaybe
)

var categoryNames = [...]string{
	CategoryAll:                 "executed+not-executed+maybe",
	CategoryExecutedMaybe:       "executed+maybe",
	CategoryExecutedNotExecuted: "executed+not-executed",
	CategoryNotExecutedMaybe:    "not-executed+maybe",
	CategoryExecuted:            "executed",
	CategoryNotExecuted:         "not-executed",
	CategoryMaybe:               "maybe",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryExecutedMaybe,
		CategoryExecutedNotExecuted,
		CategoryNotExecutedMaybe,
		CategoryExecuted,
		CategoryNotExecuted,
		CategoryMaybe,
	}
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}

	return categoryNames[c]
}

// Annotation holds the seven pairwise disjoint line sets derived from an
// entity's coverage sets.
type Annotation struct {
	All                 LineSet
	ExecutedMaybe       LineSet
	ExecutedNotExecuted LineSet
	NotExecutedMaybe    LineSet
	ExecutedOnly        LineSet
	NotExecutedOnly     LineSet
	MaybeOnly           LineSet
}

// Lines returns the set for category c.
func (a Annotation) Lines(c Category) LineSet {
	switch c {
	case CategoryAll:
		return a.All
	case CategoryExecutedMaybe:
		return a.ExecutedMaybe
	case CategoryExecutedNotExecuted:
		return a.ExecutedNotExecuted
	case CategoryNotExecutedMaybe:
		return a.NotExecutedMaybe
	case CategoryExecuted:
		return a.ExecutedOnly
	case CategoryNotExecuted:
		return a.NotExecutedOnly
	case CategoryMaybe:
		return a.MaybeOnly
	default:
		return nil
	}
}

// CategoryOf returns the single category holding line.
func (a Annotation) CategoryOf(line int) (Category, bool) {
	for _, c := range Categories() {
		if a.Lines(c).Contains(line) {
			return c, true
		}
	}

	return 0, false
}

// Len returns the total number of annotated lines.
func (a Annotation) Len() int {
	total := 0
	for _, c := range Categories() {
		total += a.Lines(c).Len()
	}

	return total
}

// AnnotationSet is the annotation of one named entity, ready to be displayed or stored.
type AnnotationSet struct {
	Scope      Scope
	File       string
	Function   string // empty for global file entities
	Annotation Annotation
}
