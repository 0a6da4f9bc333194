package eval

import (
	"fmt"

	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"
)

func Ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// Result counts head agreement for one sentence
type Result struct {
	Tokens    int
	Unlabeled int // correct heads
	Labeled   int // correct heads with correct relations
}

func (r *Result) UAS() float64 {
	return Ratio(r.Unlabeled, r.Tokens)
}

func (r *Result) LAS() float64 {
	return Ratio(r.Labeled, r.Tokens)
}

func (r *Result) Exact() bool {
	return r.Unlabeled == r.Tokens
}

// MismatchError reports test and gold sentences that do not line up
type MismatchError struct {
	Sentence int
	Reason   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("sentence %d: %s", e.Sentence, e.Reason)
}

// Attachment compares the heads and relations of test against gold,
// which must hold the same tokens
func Attachment(test, gold *nlp.Sentence) (*Result, error) {
	if test.Len() != gold.Len() {
		return nil, &MismatchError{Reason: fmt.Sprintf("test has %d tokens, gold has %d", test.Len()-1, gold.Len()-1)}
	}
	retval := &Result{}
	for i := 1; i < gold.Len(); i++ {
		testToken, goldToken := test.Tokens[i], gold.Tokens[i]
		if testToken.Form != goldToken.Form {
			return nil, &MismatchError{Reason: fmt.Sprintf("token %d is %q in test and %q in gold", i, testToken.Form, goldToken.Form)}
		}
		retval.Tokens++
		if testToken.Head == goldToken.Head {
			retval.Unlabeled++
			if testToken.Relation == goldToken.Relation {
				retval.Labeled++
			}
		}
	}
	return retval, nil
}

type Total struct {
	Result
	Results           []*Result
	Exact, Population int
}

func (t *Total) Add(r *Result) {
	t.Tokens += r.Tokens
	t.Unlabeled += r.Unlabeled
	t.Labeled += r.Labeled
	if r.Exact() {
		t.Exact += 1
	}
	t.Population += 1
	if t.Results != nil {
		t.Results = append(t.Results, r)
	}
}

func (t *Total) ExactMatch() float64 {
	return Ratio(t.Exact, t.Population)
}

// Corpus evaluates sentence pairs in order
func Corpus(test, gold []*nlp.Sentence) (*Total, error) {
	if len(test) != len(gold) {
		return nil, &MismatchError{Sentence: -1, Reason: fmt.Sprintf("test has %d sentences, gold has %d", len(test), len(gold))}
	}
	total := &Total{Results: make([]*Result, 0, len(gold))}
	for i := range gold {
		result, err := Attachment(test[i], gold[i])
		if err != nil {
			err.(*MismatchError).Sentence = i
			return nil, err
		}
		total.Add(result)
	}
	return total, nil
}
