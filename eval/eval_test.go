package eval

import (
	"errors"
	"testing"

	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentence(forms []string, heads []int, rels []string) *nlp.Sentence {
	sent := nlp.NewSentence()
	for i, form := range forms {
		sent.AddToken(nlp.Token{Form: form, POS: "X", Head: heads[i], Relation: nlp.DepRel(rels[i])}, false)
	}
	return sent
}

func TestAttachment(t *testing.T) {
	gold := sentence([]string{"No", ",", "it", "was"}, []int{4, 4, 4, 0}, []string{"ADV", "P", "SBJ", "ROOT"})
	test := sentence([]string{"No", ",", "it", "was"}, []int{4, 1, 4, 0}, []string{"ADV", "P", "OBJ", "ROOT"})

	result, err := Attachment(test, gold)
	require.NoError(t, err)
	assert.Equal(t, &Result{Tokens: 4, Unlabeled: 3, Labeled: 2}, result)
	assert.Equal(t, 0.75, result.UAS())
	assert.Equal(t, 0.5, result.LAS())
	assert.False(t, result.Exact())
}

func TestCorpus(t *testing.T) {
	gold := []*nlp.Sentence{
		sentence([]string{"Dogs", "bark"}, []int{2, 0}, []string{"SBJ", "ROOT"}),
		sentence([]string{"Cats", "sleep"}, []int{2, 0}, []string{"SBJ", "ROOT"}),
	}
	test := []*nlp.Sentence{
		sentence([]string{"Dogs", "bark"}, []int{2, 0}, []string{"SBJ", "ROOT"}),
		sentence([]string{"Cats", "sleep"}, []int{0, 1}, []string{"SBJ", "ROOT"}),
	}
	total, err := Corpus(test, gold)
	require.NoError(t, err)
	assert.Equal(t, 4, total.Tokens)
	assert.Equal(t, 2, total.Unlabeled)
	assert.Equal(t, 0.5, total.UAS())
	assert.Equal(t, 0.5, total.ExactMatch())
	assert.Len(t, total.Results, 2)
}

func TestCorpusMismatch(t *testing.T) {
	gold := []*nlp.Sentence{sentence([]string{"Dogs", "bark"}, []int{2, 0}, []string{"SBJ", "ROOT"})}
	test := []*nlp.Sentence{sentence([]string{"Cats", "bark"}, []int{2, 0}, []string{"SBJ", "ROOT"})}

	_, err := Corpus(test, gold)
	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 0, mismatch.Sentence)

	_, err = Corpus(nil, gold)
	assert.Error(t, err)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(3, 0))
	assert.Equal(t, 0.25, Ratio(1, 4))
}
