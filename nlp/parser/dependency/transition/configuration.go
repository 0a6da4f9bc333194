package transition

import (
	"fmt"
	"strings"

	"github.com/Reem-Alatrash/Dependency-Parser/alg"
	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"
)

// ParserState is an arc-eager configuration over a sentence of Length
// tokens, root included. LeftMost and RightMost cache the extreme
// dependents seen by the last feature extraction, -1 when unknown.
type ParserState struct {
	Length int

	stack alg.Stack
	queue alg.Queue
	Arcs  *ArcSet

	LeftMost, RightMost []int

	// tokens popped by LEFT or REDUCE
	Reduced int
	Last    Transition
	Steps   int
}

// NewParserState returns the initial configuration: stack [0] and
// queue 1..length-1
func NewParserState(length int) *ParserState {
	if length < 1 {
		panic("Can't create a configuration without a root token")
	}
	c := &ParserState{
		Length:    length,
		stack:     alg.NewStackArray(length),
		queue:     alg.NewQueueSlice(length),
		Arcs:      NewArcSet(length),
		LeftMost:  make([]int, length),
		RightMost: make([]int, length),
		Last:      -1,
	}
	c.stack.Push(0)
	for i := 1; i < length; i++ {
		c.queue.Enqueue(i)
	}
	for i := range c.LeftMost {
		c.LeftMost[i] = -1
		c.RightMost[i] = -1
	}
	return c
}

func (c *ParserState) Stack() alg.Stack {
	return c.stack
}

func (c *ParserState) Queue() alg.Queue {
	return c.queue
}

// Terminal is true once the queue is exhausted
func (c *ParserState) Terminal() bool {
	return c.queue.Size() == 0
}

// Heads returns the head of every token, NO_HEAD where none was
// assigned. The root's entry is always NO_HEAD.
func (c *ParserState) Heads() []int {
	retval := make([]int, c.Length)
	for i := range retval {
		retval[i] = nlp.NO_HEAD
	}
	for _, arc := range c.Arcs.Arcs {
		if arc.Modifier > 0 && arc.Modifier < c.Length && retval[arc.Modifier] == nlp.NO_HEAD {
			retval[arc.Modifier] = arc.Head
		}
	}
	return retval
}

// Headless lists the non root tokens that have no head
func (c *ParserState) Headless() []int {
	var retval []int
	for i, head := range c.Heads() {
		if i > 0 && head == nlp.NO_HEAD {
			retval = append(retval, i)
		}
	}
	return retval
}

func (c *ParserState) String() string {
	return fmt.Sprintf("%s\t[%s]\t[%s]\t%s",
		c.Last, joinInts(c.stack.Values()), joinInts(c.queue.Values()), arcsString(c.Arcs.Sorted()))
}

func joinInts(values []int) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = fmt.Sprint(v)
	}
	return strings.Join(strs, ",")
}

func arcsString(arcs []nlp.Arc) string {
	strs := make([]string, len(arcs))
	for i, arc := range arcs {
		strs[i] = arc.String()
	}
	return "{" + strings.Join(strs, ",") + "}"
}
