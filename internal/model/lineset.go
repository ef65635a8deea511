// Package model defines the coverage and trace data structures built from a report.
package model

import (
	"fmt"
	"sort"
)

// LineSet is a set of 1-based source line numbers.
type LineSet map[int]struct{}

// NewLineSet builds a set from the given lines. It fails with ErrInvalidLine
// if any line is below 1.
func NewLineSet(lines ...int) (LineSet, error) {
	s := make(LineSet, len(lines))
	for _, line := range lines {
		if err := s.Add(line); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Add inserts line into the set. The set is left untouched when line < 1.
func (s LineSet) Add(line int) error {
	if line < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLine, line)
	}

	s[line] = struct{}{}

	return nil
}

// Contains reports whether line is a member of the set.
func (s LineSet) Contains(line int) bool {
	_, ok := s[line]
	return ok
}

// Len returns the number of lines in the set.
func (s LineSet) Len() int {
	return len(s)
}

// Lines returns the members in ascending order.
func (s LineSet) Lines() []int {
	lines := make([]int, 0, len(s))
	for line := range s {
		lines = append(lines, line)
	}

	sort.Ints(lines)

	return lines
}

// Intersect returns the lines present in both s and other.
func (s LineSet) Intersect(other LineSet) LineSet {
	out := make(LineSet)

	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	for line := range small {
		if large.Contains(line) {
			out[line] = struct{}{}
		}
	}

	return out
}

// Difference returns the lines of s that are in none of others.
func (s LineSet) Difference(others ...LineSet) LineSet {
	out := make(LineSet, len(s))

next:
	for line := range s {
		for _, other := range others {
			if other.Contains(line) {
				continue next
			}
		}

		out[line] = struct{}{}
	}

	return out
}

// Union returns the lines present in s or any of others.
func (s LineSet) Union(others ...LineSet) LineSet {
	out := make(LineSet, len(s))
	for line := range s {
		out[line] = struct{}{}
	}

	for _, other := range others {
		for line := range other {
			out[line] = struct{}{}
		}
	}

	return out
}
