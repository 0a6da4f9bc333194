package transition

import (
	"fmt"
	"strconv"

	"github.com/Reem-Alatrash/Dependency-Parser/alg/featurevector"
	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"
)

const (
	NULL_FORM = "NULL"
	NULL_POS  = "NULL_POS"

	// distances at or above this share a single bucket
	DISTANCE_CAP = 10
)

// NUM_TEMPLATES is the number of keys rendered per configuration
const NUM_TEMPLATES = 34

// Extractor renders the feature templates of a configuration
type Extractor struct{}

// Keys renders every template for conf. The stack top and queue front
// must exist. As a side effect the leftmost and rightmost dependent
// caches of the stack top and queue front are refreshed.
func (x *Extractor) Keys(conf *ParserState, sent *nlp.Sentence) []string {
	b0, bExists := conf.Queue().Peek()
	s0, sExists := conf.Stack().Peek()
	if !(bExists && sExists) {
		panic("Can't extract features, Stack and/or Queue are/is empty")
	}
	arcs := conf.Arcs
	s0Form, s0POS := sent.Form(s0), sent.POS(s0)
	b0Form, b0POS := sent.Form(b0), sent.POS(b0)

	b1Form, b1POS := NULL_FORM, NULL_POS
	if b1, exists := conf.Queue().Index(1); exists {
		b1Form, b1POS = sent.Form(b1), sent.POS(b1)
	}
	b2Form, b2POS := NULL_FORM, NULL_POS
	if b2, exists := conf.Queue().Index(2); exists {
		b2Form, b2POS = sent.Form(b2), sent.POS(b2)
	}
	s1POS := NULL_POS
	if s1, exists := conf.Stack().Index(1); exists {
		s1POS = sent.POS(s1)
	}

	ldb0POS := NULL_POS
	if left, _, exists := arcs.Extremes(b0); exists {
		conf.LeftMost[b0] = left
		ldb0POS = sent.POS(left)
	}

	hs0POS := NULL_POS
	if head, exists := arcs.Head(s0); exists {
		hs0POS = sent.POS(head)
	}

	lds0POS, rds0POS := NULL_POS, NULL_POS
	if left, right, exists := arcs.Extremes(s0); exists {
		conf.LeftMost[s0] = left
		conf.RightMost[s0] = right
		lds0POS, rds0POS = sent.POS(left), sent.POS(right)
	}

	distance := strconv.Itoa(b0 - s0)
	if b0-s0 >= DISTANCE_CAP {
		distance = strconv.Itoa(DISTANCE_CAP) + "+"
	}

	features := make([]string, 0, NUM_TEMPLATES)
	// unigrams
	features = append(features,
		fmt.Sprintf("s0form,pos=%s,%s", s0Form, s0POS),
		fmt.Sprintf("s0form=%s", s0Form),
		fmt.Sprintf("s0pos=%s", s0POS),
		fmt.Sprintf("b0form,pos=%s,%s", b0Form, b0POS),
		fmt.Sprintf("b0form=%s", b0Form),
		fmt.Sprintf("b0pos=%s", b0POS),
		fmt.Sprintf("b1form,pos=%s,%s", b1Form, b1POS),
		fmt.Sprintf("b1form=%s", b1Form),
		fmt.Sprintf("b1pos=%s", b1POS),
		fmt.Sprintf("b2form,pos=%s,%s", b2Form, b2POS),
		fmt.Sprintf("b2form=%s", b2Form),
		fmt.Sprintf("b2pos=%s", b2POS),
		fmt.Sprintf("s1pos=%s", s1POS),
		fmt.Sprintf("ldb0pos=%s", ldb0POS),
	)
	// bigrams
	features = append(features,
		fmt.Sprintf("s0form,pos=%s,%s+b0form,pos=%s,%s", s0Form, s0POS, b0Form, b0POS),
		fmt.Sprintf("s0form,pos=%s,%s+b0form=%s", s0Form, s0POS, b0Form),
		fmt.Sprintf("s0form=%s+b0form,pos=%s,%s", s0Form, b0Form, b0POS),
		fmt.Sprintf("s0form,pos=%s,%s+b0pos=%s", s0Form, s0POS, b0POS),
		fmt.Sprintf("s0pos=%s+b0form,pos=%s,%s", s0POS, b0Form, b0POS),
		fmt.Sprintf("s0form=%s+b0form=%s", s0Form, b0Form),
		fmt.Sprintf("s0pos=%s+b0pos=%s", s0POS, b0POS),
		fmt.Sprintf("b0pos=%s+b1pos=%s", b0POS, b1POS),
	)
	// trigrams
	features = append(features,
		fmt.Sprintf("b0pos=%s+b1pos=%s+b2pos=%s", b0POS, b1POS, b2POS),
		fmt.Sprintf("s0pos=%s+b0pos=%s+b1pos=%s", s0POS, b0POS, b1POS),
		fmt.Sprintf("hs0pos=%s+s0pos=%s+b0pos=%s", hs0POS, s0POS, b0POS),
		fmt.Sprintf("s0pos=%s+lds0pos=%s+b0pos=%s", s0POS, lds0POS, b0POS),
		fmt.Sprintf("s0pos=%s+rds0pos=%s+b0pos=%s", s0POS, rds0POS, b0POS),
		fmt.Sprintf("s0pos=%s+b0pos=%s+ldb0pos=%s", s0POS, b0POS, ldb0POS),
	)
	// distance
	features = append(features,
		fmt.Sprintf("s0form,d=%s,%s", s0Form, distance),
		fmt.Sprintf("s0pos,d=%s,%s", s0POS, distance),
		fmt.Sprintf("b0form,d=%s,%s", b0Form, distance),
		fmt.Sprintf("b0pos,d=%s,%s", b0POS, distance),
		fmt.Sprintf("s0form=%s+b0form,d=%s,%s", s0Form, b0Form, distance),
		fmt.Sprintf("s0pos=%s+b0pos,d=%s,%s", s0POS, b0POS, distance),
	)
	return features
}

// Features renders and vectorizes conf. With a growing vocabulary new
// keys are allocated, with a frozen one they are dropped.
func (x *Extractor) Features(conf *ParserState, sent *nlp.Sentence, indexer featurevector.Indexer) featurevector.Vector {
	return indexer.Vectorize(x.Keys(conf, sent))
}
