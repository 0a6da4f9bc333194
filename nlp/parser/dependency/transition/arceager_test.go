package transition

import (
	"errors"
	"testing"

	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	c := NewParserState(4)
	assert.Equal(t, []int{0}, c.Stack().Values())
	assert.Equal(t, []int{1, 2, 3}, c.Queue().Values())
	assert.Equal(t, []int{-1, -1, -1, -1}, c.LeftMost)
	assert.Equal(t, []int{-1, -1, -1, -1}, c.RightMost)
	assert.False(t, c.Terminal())
	assert.True(t, NewParserState(1).Terminal())
	assert.Panics(t, func() { NewParserState(0) })
}

func TestArcEagerTransitions(t *testing.T) {
	a := &ArcEager{}
	c := NewParserState(3)

	a.Transition(c, SHIFT)
	assert.Equal(t, []int{0, 1}, c.Stack().Values())
	assert.Equal(t, []int{2}, c.Queue().Values())

	a.Transition(c, LEFT)
	assert.Equal(t, []int{0}, c.Stack().Values())
	assert.True(t, c.Arcs.HasArc(2, 1))
	assert.Equal(t, 1, c.Reduced)

	a.Transition(c, RIGHT)
	assert.Equal(t, []int{0, 2}, c.Stack().Values())
	assert.Empty(t, c.Queue().Values())
	assert.True(t, c.Arcs.HasArc(0, 2))

	a.Transition(c, REDUCE)
	assert.Equal(t, []int{0}, c.Stack().Values())
	assert.Equal(t, REDUCE, c.Last)
	assert.Equal(t, 4, c.Steps)
}

func TestArcEagerPanics(t *testing.T) {
	a := &ArcEager{}
	assert.Panics(t, func() { a.Transition(NewParserState(1), SHIFT) }, "shift with empty queue")
	assert.Panics(t, func() { a.Transition(NewParserState(3), LEFT) }, "left arc on the root")
	assert.Panics(t, func() { a.Transition(NewParserState(3), REDUCE) }, "reduce a headless root")
	assert.Panics(t, func() { a.Transition(stateFrom([]int{0, 1}, []int{2}, nlp.Arc{Head: 0, Modifier: 1}), LEFT) },
		"second head for the stack top")
	assert.Panics(t, func() { a.Transition(NewParserState(3), Transition(7)) })
}

func TestLegalRuntimePolicy(t *testing.T) {
	a := &ArcEager{}

	root := NewParserState(3)
	assert.Equal(t, []Transition{SHIFT, RIGHT}, a.Legal(root))

	headless := stateFrom([]int{0, 1}, []int{2})
	assert.Equal(t, []Transition{SHIFT, RIGHT, LEFT}, a.Legal(headless))

	headed := stateFrom([]int{0, 1}, []int{2}, nlp.Arc{Head: 0, Modifier: 1})
	assert.Equal(t, []Transition{SHIFT, RIGHT, REDUCE}, a.Legal(headed))
}

func TestLeftAndReduceExclusive(t *testing.T) {
	a := &ArcEager{}
	sent := testSentence()
	oracle := NewOracle(sent.Gold)
	c := NewParserState(sent.Len())
	for !c.Terminal() {
		legal := a.Legal(c)
		assert.False(t, contains(legal, LEFT) && contains(legal, REDUCE), "both LA and RE legal in %v", c)
		for _, transition := range legal {
			assert.True(t, a.Allowed(c, transition), "%v offered but not allowed in %v", transition, c)
		}
		a.Transition(c, oracle.Transition(c))
	}
}

func TestPartitionInvariant(t *testing.T) {
	a := &ArcEager{}
	sent := testSentence()
	oracle := NewOracle(sent.Gold)
	c := NewParserState(sent.Len())
	for !c.Terminal() {
		transition := oracle.Transition(c)
		queueBefore := c.Queue().Size()
		a.Transition(c, transition)

		assert.Equal(t, sent.Len(), c.Stack().Size()+c.Queue().Size()+c.Reduced)
		switch transition {
		case SHIFT, RIGHT:
			assert.Equal(t, queueBefore-1, c.Queue().Size())
		default:
			assert.Equal(t, queueBefore, c.Queue().Size())
		}
	}
}

func TestOracleDogsBark(t *testing.T) {
	a := &ArcEager{}
	sent := dogsBark()
	oracle := NewOracle(sent.Gold)
	c := NewParserState(sent.Len())

	assert.Equal(t, SHIFT, oracle.Transition(c))
	a.Transition(c, SHIFT)
	assert.Equal(t, []int{0, 1}, c.Stack().Values())
	assert.Equal(t, []int{2}, c.Queue().Values())

	assert.Equal(t, LEFT, oracle.Transition(c))
	a.Transition(c, LEFT)
	assert.Equal(t, []int{0}, c.Stack().Values())
	assert.Equal(t, []nlp.Arc{{Head: 2, Modifier: 1}}, c.Arcs.Arcs)

	assert.Equal(t, RIGHT, oracle.Transition(c))
	a.Transition(c, RIGHT)
	assert.Equal(t, []int{0, 2}, c.Stack().Values())
	assert.True(t, c.Terminal())
	assert.True(t, c.Arcs.Equal(NewArcSetFrom(sent.Gold)))
}

func TestOracleSequence(t *testing.T) {
	a := &ArcEager{}
	sent := testSentence()
	var sequence []Transition
	final, err := a.Replay(0, sent, func(_ *ParserState, transition Transition) {
		sequence = append(sequence, transition)
	})
	require.NoError(t, err)
	assert.Equal(t, TEST_EAGER_TRANSITIONS, sequence)
	assert.True(t, final.Arcs.Equal(NewArcSetFrom(sent.Gold)))
	assert.Empty(t, final.Headless())
	assert.Equal(t, []int{0, 3, 9}, final.Stack().Values(), "arc-eager leaves attached tokens on the stack")
}

func TestOracleReduceNeedsAllChildren(t *testing.T) {
	sent := testSentence()
	oracle := NewOracle(sent.Gold)
	// "had" is attached to the root but "effect" is not yet attached to it
	c := stateFrom([]int{0, 3}, []int{4, 5, 6, 7, 8, 9}, nlp.Arc{Head: 0, Modifier: 3}, nlp.Arc{Head: 3, Modifier: 2}, nlp.Arc{Head: 2, Modifier: 1})
	assert.Equal(t, SHIFT, oracle.Transition(c))

	c = stateFrom([]int{0, 3, 5, 6, 8}, []int{9},
		nlp.Arc{Head: 0, Modifier: 3}, nlp.Arc{Head: 3, Modifier: 5}, nlp.Arc{Head: 5, Modifier: 6}, nlp.Arc{Head: 6, Modifier: 8})
	assert.Equal(t, REDUCE, oracle.Transition(c))
}

func TestReplayNonProjective(t *testing.T) {
	a := &ArcEager{}
	_, err := a.Replay(5, nonProjective(), nil)
	require.Error(t, err)
	var oracleErr *OracleError
	require.True(t, errors.As(err, &oracleErr))
	assert.Equal(t, 5, oracleErr.Sentence)
	assert.Contains(t, oracleErr.Reason, "not reproduced")
}

func TestReplayGoldOutOfRange(t *testing.T) {
	a := &ArcEager{}
	sent := dogsBark()
	sent.Gold = append(sent.Gold, nlp.Arc{Head: 7, Modifier: 1})
	_, err := a.Replay(0, sent, nil)
	var oracleErr *OracleError
	require.True(t, errors.As(err, &oracleErr))
	assert.Equal(t, 0, oracleErr.Step)
}

func TestHeadless(t *testing.T) {
	c := stateFrom([]int{0, 1, 3}, nil, nlp.Arc{Head: 1, Modifier: 2})
	assert.Equal(t, []int{nlp.NO_HEAD, nlp.NO_HEAD, 1, nlp.NO_HEAD}, c.Heads())
	assert.Equal(t, []int{1, 3}, c.Headless())
}

func contains(transitions []Transition, transition Transition) bool {
	for _, t := range transitions {
		if t == transition {
			return true
		}
	}
	return false
}

func TestParserStateString(t *testing.T) {
	c := stateFrom([]int{0, 3}, []int{4}, nlp.Arc{Head: 3, Modifier: 2}, nlp.Arc{Head: 0, Modifier: 3}, nlp.Arc{Head: 2, Modifier: 1})
	assert.Equal(t, "Transition(-1)\t[0,3]\t[4]\t{(0,3),(2,1),(3,2)}", c.String())

	(&ArcEager{}).Transition(c, SHIFT)
	assert.Equal(t, "SH\t[0,3,4]\t[]\t{(0,3),(2,1),(3,2)}", c.String())
}
