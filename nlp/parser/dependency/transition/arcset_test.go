package transition

import (
	"testing"

	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"

	"github.com/stretchr/testify/assert"
)

func TestArcSetAdd(t *testing.T) {
	s := NewArcSet(4)
	assert.True(t, s.Add(nlp.Arc{Head: 2, Modifier: 1}))
	assert.False(t, s.Add(nlp.Arc{Head: 2, Modifier: 1}), "duplicate arc added")
	assert.True(t, s.Add(nlp.Arc{Head: 2, Modifier: 4}))
	assert.True(t, s.Add(nlp.Arc{Head: 2, Modifier: 3}))
	assert.Equal(t, 3, s.Size())

	head, exists := s.Head(4)
	assert.True(t, exists)
	assert.Equal(t, 2, head)
	_, exists = s.Head(2)
	assert.False(t, exists)

	assert.Equal(t, []int{1, 4, 3}, s.Dependents(2))
	left, right, exists := s.Extremes(2)
	assert.True(t, exists)
	assert.Equal(t, 1, left)
	assert.Equal(t, 4, right)
	_, _, exists = s.Extremes(1)
	assert.False(t, exists)
}

func TestArcSetEqual(t *testing.T) {
	a := NewArcSetFrom([]nlp.Arc{{Head: 0, Modifier: 2}, {Head: 2, Modifier: 1}})
	b := NewArcSetFrom([]nlp.Arc{{Head: 2, Modifier: 1}, {Head: 0, Modifier: 2}, {Head: 2, Modifier: 1}})
	assert.True(t, a.Equal(b))
	assert.Equal(t, []nlp.Arc{{Head: 0, Modifier: 2}, {Head: 2, Modifier: 1}}, b.Sorted())

	c := a.Copy()
	c.Add(nlp.Arc{Head: 2, Modifier: 3})
	assert.False(t, a.Equal(c))
	assert.Equal(t, 2, a.Size(), "copy shares storage with the original")

	onlyA, onlyC := a.Diff(c)
	assert.Empty(t, onlyA)
	assert.Equal(t, []nlp.Arc{{Head: 2, Modifier: 3}}, onlyC)
}
