package transition

import (
	"sort"

	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"
)

// ArcSet is an insertion ordered set of arcs. Arcs are never removed.
// Head and dependent queries scan the whole set.
type ArcSet struct {
	Arcs    []nlp.Arc
	SeenArc map[nlp.Arc]bool
}

func NewArcSet(capacity int) *ArcSet {
	return &ArcSet{
		Arcs:    make([]nlp.Arc, 0, capacity),
		SeenArc: make(map[nlp.Arc]bool, capacity),
	}
}

// NewArcSetFrom builds a set from arcs, dropping duplicates
func NewArcSetFrom(arcs []nlp.Arc) *ArcSet {
	s := NewArcSet(len(arcs))
	for _, arc := range arcs {
		s.Add(arc)
	}
	return s
}

// Add inserts arc unless it is already present and reports whether
// the set changed.
func (s *ArcSet) Add(arc nlp.Arc) bool {
	if s.SeenArc[arc] {
		return false
	}
	s.SeenArc[arc] = true
	s.Arcs = append(s.Arcs, arc)
	return true
}

func (s *ArcSet) Contains(arc nlp.Arc) bool {
	return s.SeenArc[arc]
}

func (s *ArcSet) HasArc(head, modifier int) bool {
	return s.SeenArc[nlp.Arc{Head: head, Modifier: modifier}]
}

func (s *ArcSet) Size() int {
	return len(s.Arcs)
}

// Head returns the first head recorded for modifier
func (s *ArcSet) Head(modifier int) (int, bool) {
	for _, arc := range s.Arcs {
		if arc.Modifier == modifier {
			return arc.Head, true
		}
	}
	return nlp.NO_HEAD, false
}

func (s *ArcSet) HasHead(modifier int) bool {
	_, exists := s.Head(modifier)
	return exists
}

// Dependents returns the modifiers of head in insertion order
func (s *ArcSet) Dependents(head int) []int {
	var retval []int
	for _, arc := range s.Arcs {
		if arc.Head == head {
			retval = append(retval, arc.Modifier)
		}
	}
	return retval
}

// Extremes returns the leftmost and rightmost dependents of head
func (s *ArcSet) Extremes(head int) (int, int, bool) {
	left, right, found := 0, 0, false
	for _, arc := range s.Arcs {
		if arc.Head != head {
			continue
		}
		if !found || arc.Modifier < left {
			left = arc.Modifier
		}
		if !found || arc.Modifier > right {
			right = arc.Modifier
		}
		found = true
	}
	return left, right, found
}

func (s *ArcSet) Copy() *ArcSet {
	retval := NewArcSet(len(s.Arcs))
	for _, arc := range s.Arcs {
		retval.Add(arc)
	}
	return retval
}

// Sorted returns the arcs ordered by head, then modifier
func (s *ArcSet) Sorted() []nlp.Arc {
	retval := make([]nlp.Arc, len(s.Arcs))
	copy(retval, s.Arcs)
	sort.Slice(retval, func(i, j int) bool {
		if retval[i].Head != retval[j].Head {
			return retval[i].Head < retval[j].Head
		}
		return retval[i].Modifier < retval[j].Modifier
	})
	return retval
}

// Equal compares as sets, ignoring insertion order
func (s *ArcSet) Equal(other *ArcSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, arc := range s.Arcs {
		if !other.Contains(arc) {
			return false
		}
	}
	return true
}

// Diff returns the arcs only in s and the arcs only in other
func (s *ArcSet) Diff(other *ArcSet) ([]nlp.Arc, []nlp.Arc) {
	var onlyThis, onlyOther []nlp.Arc
	for _, arc := range s.Arcs {
		if !other.Contains(arc) {
			onlyThis = append(onlyThis, arc)
		}
	}
	for _, arc := range other.Arcs {
		if !s.Contains(arc) {
			onlyOther = append(onlyOther, arc)
		}
	}
	return onlyThis, onlyOther
}
