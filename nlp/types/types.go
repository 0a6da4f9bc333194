package types

import (
	"fmt"
	"strings"
)

// Sentinel field values of the synthetic token at index 0
const (
	ROOT_TOKEN = "ROOT"
	ROOT_POS   = "ROOT_POS"
	ROOT_MORPH = "ROOT_Morph"
	ROOT_LABEL = "root_REL"

	// NO_HEAD marks a token without an assigned head
	NO_HEAD = -1
)

type DepRel string

func (d DepRel) String() string {
	return string(d)
}

// Token is a single row of a sentence. FinePOS is carried through
// to output untouched, it is not used by the parser.
type Token struct {
	Form     string
	Lemma    string
	POS      string
	FinePOS  string
	Morph    string
	Head     int
	Relation DepRel
}

// Sentence is an index addressed token sequence. Tokens[0] is always
// the synthetic root.
type Sentence struct {
	Tokens []Token
	Gold   []Arc
}

func NewSentence() *Sentence {
	return &Sentence{
		Tokens: []Token{RootToken()},
	}
}

func RootToken() Token {
	return Token{
		Form:     ROOT_TOKEN,
		Lemma:    ROOT_TOKEN,
		POS:      ROOT_POS,
		Morph:    ROOT_MORPH,
		Head:     NO_HEAD,
		Relation: ROOT_LABEL,
	}
}

// AddToken appends a token; with gold set the token's head is
// recorded as a gold arc to the new token's index.
func (s *Sentence) AddToken(token Token, gold bool) int {
	s.Tokens = append(s.Tokens, token)
	id := len(s.Tokens) - 1
	if gold {
		s.Gold = append(s.Gold, Arc{token.Head, id})
	}
	return id
}

// Len includes the root token
func (s *Sentence) Len() int {
	return len(s.Tokens)
}

func (s *Sentence) Form(i int) string {
	return s.Tokens[i].Form
}

func (s *Sentence) POS(i int) string {
	return s.Tokens[i].POS
}

func (s *Sentence) String() string {
	forms := make([]string, 0, len(s.Tokens)-1)
	for _, token := range s.Tokens[1:] {
		forms = append(forms, token.Form)
	}
	return strings.Join(forms, " ")
}

// Arc is a directed edge from Head to Modifier, both token indices
type Arc struct {
	Head, Modifier int
}

func (a Arc) String() string {
	return fmt.Sprintf("(%d,%d)", a.Head, a.Modifier)
}
