package transition

import (
	"fmt"

	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"
)

// ArcEager is the unlabeled arc-eager transition system. Transitions
// modify the configuration in place.
type ArcEager struct{}

// Transition System:
// LA	(S|wi,	wj|B,	A) => (S      ,	wj|B,	A+{(wj,wi)})	if: (wk,wi) notin A; i != 0
// RA	(S|wi,	wj|B,	A) => (S|wi|wj,	   B,	A+{(wi,wj)})
// RE	(S|wi,	   B,	A) => (S      ,	   B,	A)			if: (wk,wi) in A
// SH	(S   ,	wi|B, 	A) => (S|wi   ,	   B,	A)
func (a *ArcEager) Transition(conf *ParserState, transition Transition) *ParserState {
	switch transition {
	case LEFT:
		wi, wiExists := conf.Stack().Peek()
		wj, wjExists := conf.Queue().Peek()
		if !(wiExists && wjExists) {
			panic("Can't LA, Stack and/or Queue are/is empty")
		}
		if wi == 0 {
			panic("Can't LA, stack top is the root")
		}
		if conf.Arcs.HasHead(wi) {
			panic("Can't create arc for wi, it already has a head")
		}
		conf.Stack().Pop()
		conf.Arcs.Add(nlp.Arc{Head: wj, Modifier: wi})
		conf.Reduced++
	case RIGHT:
		wi, wiExists := conf.Stack().Peek()
		wj, wjExists := conf.Queue().Dequeue()
		if !(wiExists && wjExists) {
			panic("Can't RA, Stack and/or Queue are/is empty")
		}
		conf.Arcs.Add(nlp.Arc{Head: wi, Modifier: wj})
		conf.Stack().Push(wj)
	case REDUCE:
		wi, wiExists := conf.Stack().Peek()
		if !wiExists {
			panic("Can't reduce, stack is empty")
		}
		if !conf.Arcs.HasHead(wi) {
			panic(fmt.Sprintf("Can't reduce %d if it doesn't have a head", wi))
		}
		conf.Stack().Pop()
		conf.Reduced++
	case SHIFT:
		wi, wiExists := conf.Queue().Dequeue()
		if !wiExists {
			panic("Can't shift, queue is empty")
		}
		conf.Stack().Push(wi)
	default:
		panic(fmt.Sprintf("Unknown transition %d", int(transition)))
	}
	conf.Last = transition
	conf.Steps++
	return conf
}

// Legal is the candidate set used when parsing: SHIFT and RIGHT are
// always offered, then LEFT if the stack top is headless and not the
// root, otherwise REDUCE if the stack top has a head.
func (a *ArcEager) Legal(conf *ParserState) []Transition {
	legal := []Transition{SHIFT, RIGHT}
	sTop, sExists := conf.Stack().Peek()
	if !sExists {
		return legal
	}
	hasHead := conf.Arcs.HasHead(sTop)
	if sTop != 0 && !hasHead {
		legal = append(legal, LEFT)
	} else if hasHead {
		legal = append(legal, REDUCE)
	}
	return legal
}

// Allowed reports whether Transition would succeed on conf
func (a *ArcEager) Allowed(conf *ParserState, transition Transition) bool {
	sTop, sExists := conf.Stack().Peek()
	_, qExists := conf.Queue().Peek()
	switch transition {
	case SHIFT:
		return qExists
	case RIGHT:
		return sExists && qExists
	case LEFT:
		return sExists && qExists && sTop != 0 && !conf.Arcs.HasHead(sTop)
	case REDUCE:
		return sExists && conf.Arcs.HasHead(sTop)
	}
	return false
}

// Oracle derives the static arc-eager gold transition from a gold arc set
type Oracle struct {
	Gold *ArcSet
}

func NewOracle(gold []nlp.Arc) *Oracle {
	return &Oracle{Gold: NewArcSetFrom(gold)}
}

// Given gold arcs Ad:
// o(c = (S,B,A)) =
// LA	if	(B[0],S[0]) in Ad
// RA	if	(S[0],B[0]) in Ad
// RE	if	S[0] has a head in A and every (S[0],k) in Ad is in A
// SH	otherwise
func (o *Oracle) Transition(conf *ParserState) Transition {
	if o.Gold == nil {
		panic("Oracle needs gold reference")
	}
	bTop, bExists := conf.Queue().Peek()
	sTop, sExists := conf.Stack().Peek()
	if !sExists {
		return SHIFT
	}
	if bExists {
		if o.Gold.HasArc(bTop, sTop) {
			return LEFT
		}
		if o.Gold.HasArc(sTop, bTop) {
			return RIGHT
		}
	}
	if conf.Arcs.HasHead(sTop) && o.hasAllChildren(conf, sTop) {
		return REDUCE
	}
	return SHIFT
}

func (o *Oracle) hasAllChildren(conf *ParserState, head int) bool {
	for _, child := range o.Gold.Dependents(head) {
		if !conf.Arcs.HasArc(head, child) {
			return false
		}
	}
	return true
}

// Replay follows the oracle from the initial configuration of sent to
// termination. visit, if set, sees every configuration before the gold
// transition chosen for it is applied. An OracleError is returned when
// the oracle proposes a transition that cannot be applied or the
// final arcs differ from the gold arcs.
func (a *ArcEager) Replay(sentID int, sent *nlp.Sentence, visit func(*ParserState, Transition)) (*ParserState, error) {
	length := sent.Len()
	for _, arc := range sent.Gold {
		if arc.Head < 0 || arc.Head >= length || arc.Modifier <= 0 || arc.Modifier >= length {
			return nil, &OracleError{sentID, 0, fmt.Sprintf("gold arc %v outside sentence of length %d", arc, length)}
		}
	}
	oracle := NewOracle(sent.Gold)
	conf := NewParserState(length)
	for !conf.Terminal() {
		transition := oracle.Transition(conf)
		if !a.Allowed(conf, transition) {
			return nil, &OracleError{sentID, conf.Steps, fmt.Sprintf("%v not applicable in %v", transition, conf)}
		}
		if visit != nil {
			visit(conf, transition)
		}
		a.Transition(conf, transition)
	}
	if !conf.Arcs.Equal(oracle.Gold) {
		missing, extra := oracle.Gold.Diff(conf.Arcs)
		return nil, &OracleError{sentID, conf.Steps, fmt.Sprintf("gold tree not reproduced, missing %v extra %v", missing, extra)}
	}
	return conf, nil
}
