package transition

import (
	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"
)

type rawToken struct {
	Form, POS string
	Head      int
}

var rawTestSent []rawToken = []rawToken{
	{"Economic", "NN", 2},
	{"news", "NN", 3},
	{"had", "VB", 0},
	{"little", "ADJ", 5},
	{"effect", "NN", 3},
	{"on", "NN", 5},
	{"financial", "NN", 8},
	{"markets", "NN", 6},
	{".", "yyDOT", 3},
}

var TEST_EAGER_TRANSITIONS []Transition = []Transition{
	SHIFT,
	LEFT,
	SHIFT,
	LEFT,
	RIGHT,
	SHIFT,
	LEFT,
	RIGHT,
	RIGHT,
	SHIFT,
	LEFT,
	RIGHT,
	REDUCE,
	REDUCE,
	REDUCE,
	RIGHT,
}

// "Economic news had little effect on financial markets ."
func testSentence() *nlp.Sentence {
	return buildSentence(rawTestSent)
}

// "Dogs bark", bark heads Dogs
func dogsBark() *nlp.Sentence {
	return buildSentence([]rawToken{
		{"Dogs", "NNS", 2},
		{"bark", "VBP", 0},
	})
}

// token 2 heads token 4 across token 3, whose head is token 1
func nonProjective() *nlp.Sentence {
	return buildSentence([]rawToken{
		{"A", "DT", 0},
		{"hearing", "NN", 1},
		{"is", "VBZ", 1},
		{"on", "IN", 2},
	})
}

func buildSentence(raw []rawToken) *nlp.Sentence {
	sent := nlp.NewSentence()
	for _, tok := range raw {
		sent.AddToken(nlp.Token{
			Form:     tok.Form,
			Lemma:    tok.Form,
			POS:      tok.POS,
			FinePOS:  tok.POS,
			Morph:    "_",
			Head:     tok.Head,
			Relation: "DEP",
		}, true)
	}
	return sent
}

func stateFrom(stack, queue []int, arcs ...nlp.Arc) *ParserState {
	length := 1
	for _, v := range append(append([]int{}, stack...), queue...) {
		if v+1 > length {
			length = v + 1
		}
	}
	c := NewParserState(length)
	c.stack.Pop()
	for c.queue.Size() > 0 {
		c.queue.Dequeue()
	}
	for _, v := range stack {
		c.stack.Push(v)
	}
	for _, v := range queue {
		c.queue.Enqueue(v)
	}
	for _, arc := range arcs {
		c.Arcs.Add(arc)
	}
	return c
}
