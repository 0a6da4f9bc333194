package conll

// Package conll reads and writes the ten column CoNLL tabular format
// For a description see http://ilk.uvt.nl/conll/#dataformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"

	"go.uber.org/zap"
)

const (
	FIELD_SEPARATOR = '\t'
	NUM_FIELDS      = 10
	EMPTY_FIELD     = "_"
)

// A Row is a single parsed row of a conll data set
type Row struct {
	ID      int
	Form    string
	Lemma   string
	CPosTag string
	PosTag  string
	FeatStr string
	Head    int
	DepRel  string
}

func (r Row) String() string {
	fields := []string{
		strconv.Itoa(r.ID),
		r.Form,
		orEmpty(r.Lemma),
		r.CPosTag,
		orEmpty(r.PosTag),
		orEmpty(r.FeatStr),
		strconv.Itoa(r.Head),
		orEmpty(r.DepRel),
		EMPTY_FIELD,
		EMPTY_FIELD}
	return strings.Join(fields, string(FIELD_SEPARATOR))
}

func orEmpty(value string) string {
	if value == "" {
		return EMPTY_FIELD
	}
	return value
}

// LineError describes an input line that was skipped
type LineError struct {
	Line   int
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// SentenceError describes a sentence that was dropped as a whole
type SentenceError struct {
	Sentence int
	Line     int
	Reason   string
}

func (e *SentenceError) Error() string {
	return fmt.Sprintf("sentence %d ending at line %d: %s", e.Sentence, e.Line, e.Reason)
}

func ParseInt(value string) (int, error) {
	i, err := strconv.ParseInt(value, 10, 0)
	return int(i), err
}

// ParseRow parses the fields of one token line. With gold set the head
// column must hold an integer, otherwise anything else is read as no head.
func ParseRow(record []string, gold bool) (Row, error) {
	var row Row
	if len(record) != NUM_FIELDS {
		return row, fmt.Errorf("expected %d fields, got %d", NUM_FIELDS, len(record))
	}
	id, err := ParseInt(record[0])
	if err != nil {
		return row, fmt.Errorf("error parsing ID field (%s): %w", record[0], err)
	}
	if id < 1 {
		return row, fmt.Errorf("ID field must be positive, got %d", id)
	}
	row.ID = id

	if record[1] == "" {
		return row, errors.New("empty FORM field")
	}
	row.Form = record[1]
	row.Lemma = record[2]

	if record[3] == "" || record[3] == EMPTY_FIELD {
		return row, errors.New("empty CPOSTAG field")
	}
	row.CPosTag = record[3]
	row.PosTag = record[4]
	row.FeatStr = record[5]

	head, err := ParseInt(record[6])
	switch {
	case err == nil:
		row.Head = head
	case gold:
		return row, fmt.Errorf("error parsing HEAD field (%s): %w", record[6], err)
	default:
		row.Head = nlp.NO_HEAD
	}
	row.DepRel = record[7]
	return row, nil
}

func (r Row) Token() nlp.Token {
	return nlp.Token{
		Form:     r.Form,
		Lemma:    r.Lemma,
		POS:      r.CPosTag,
		FinePOS:  r.PosTag,
		Morph:    r.FeatStr,
		Head:     r.Head,
		Relation: nlp.DepRel(r.DepRel),
	}
}

// Reader builds sentences from conll lines. A malformed line is skipped
// and recorded in Skipped; a sentence left inconsistent by skipped
// lines is dropped and recorded in Dropped. Neither stops the read.
type Reader struct {
	// Gold requires integer heads and records them as gold arcs
	Gold bool
	Log  *zap.Logger

	Skipped []*LineError
	Dropped []*SentenceError
}

type pendingSentence struct {
	rows     []Row
	lastLine int
}

// Read reads sentences until EOF. A row with ID 1 starts a new
// sentence, as does any row after a blank line.
func (r *Reader) Read(reader io.Reader) ([]*nlp.Sentence, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	var (
		sentences []*nlp.Sentence
		current   *pendingSentence
		seen      int
	)
	closeSentence := func() {
		if current == nil {
			return
		}
		sent, reason := r.build(current.rows)
		if reason != "" {
			dropped := &SentenceError{seen, current.lastLine, reason}
			log.Warn("Dropping sentence", zap.Int("sentence", seen), zap.Int("line", current.lastLine), zap.String("reason", reason))
			r.Dropped = append(r.Dropped, dropped)
		} else {
			sentences = append(sentences, sent)
		}
		seen++
		current = nil
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			closeSentence()
			continue
		}
		record := strings.Split(line, string(FIELD_SEPARATOR))
		row, err := ParseRow(record, r.Gold)
		if err != nil {
			skipped := &LineError{lineNum, err.Error()}
			log.Warn("Skipping line", zap.Int("line", lineNum), zap.Error(err))
			r.Skipped = append(r.Skipped, skipped)
			if record[0] == "1" {
				closeSentence()
			}
			continue
		}
		if record[0] == "1" {
			closeSentence()
		}
		if current == nil {
			current = &pendingSentence{}
		}
		current.rows = append(current.rows, row)
		current.lastLine = lineNum
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failure reading conll input at line %d: %w", lineNum, err)
	}
	closeSentence()
	log.Debug("Read sentences",
		zap.Int("sentences", len(sentences)),
		zap.Int("skipped_lines", len(r.Skipped)),
		zap.Int("dropped_sentences", len(r.Dropped)))
	return sentences, nil
}

func (r *Reader) build(rows []Row) (*nlp.Sentence, string) {
	n := len(rows)
	sent := nlp.NewSentence()
	for i, row := range rows {
		if row.ID != i+1 {
			return nil, fmt.Sprintf("token ids are not contiguous: expected %d, got %d", i+1, row.ID)
		}
		if r.Gold && (row.Head < 0 || row.Head > n) {
			return nil, fmt.Sprintf("head %d of token %d outside sentence of %d tokens", row.Head, row.ID, n)
		}
		if row.Head == row.ID {
			return nil, fmt.Sprintf("token %d heads itself", row.ID)
		}
		sent.AddToken(row.Token(), r.Gold)
	}
	return sent, ""
}

func (r *Reader) ReadFile(filename string) ([]*nlp.Sentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return r.Read(file)
}

// RepairHeads assigns a default head to every headless token other
// than the root: token 1 takes its right neighbour (the root in a one
// token sentence), any other token its left neighbour. It returns the
// number of heads assigned.
func RepairHeads(heads []int) int {
	repaired := 0
	for i := 1; i < len(heads); i++ {
		if heads[i] != nlp.NO_HEAD {
			continue
		}
		repaired++
		switch {
		case i > 1:
			heads[i] = i - 1
		case len(heads) > 2:
			heads[i] = 2
		default:
			heads[i] = 0
		}
	}
	return repaired
}

// Write writes every sentence followed by a blank line. heads[i] holds
// the heads of sents[i] indexed by token; a nil heads or entry falls
// back to the heads the tokens were read with. Headless tokens are
// repaired first; the total number of repaired heads is returned.
func Write(writer io.Writer, sents []*nlp.Sentence, heads [][]int) (int, error) {
	out := bufio.NewWriter(writer)
	repaired := 0
	for i, sent := range sents {
		var sentHeads []int
		if heads != nil && heads[i] != nil {
			if len(heads[i]) != sent.Len() {
				return repaired, fmt.Errorf("sentence %d: %d heads for %d tokens", i, len(heads[i]), sent.Len())
			}
			sentHeads = make([]int, len(heads[i]))
			copy(sentHeads, heads[i])
		} else {
			sentHeads = make([]int, sent.Len())
			for j, token := range sent.Tokens {
				sentHeads[j] = token.Head
			}
			sentHeads[0] = nlp.NO_HEAD
		}
		repaired += RepairHeads(sentHeads)
		for j := 1; j < sent.Len(); j++ {
			token := sent.Tokens[j]
			row := Row{
				ID:      j,
				Form:    token.Form,
				Lemma:   token.Lemma,
				CPosTag: token.POS,
				PosTag:  token.FinePOS,
				FeatStr: token.Morph,
				Head:    sentHeads[j],
				DepRel:  string(token.Relation),
			}
			if _, err := out.WriteString(row.String() + "\n"); err != nil {
				return repaired, err
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return repaired, err
		}
	}
	return repaired, out.Flush()
}

func WriteFile(filename string, sents []*nlp.Sentence, heads [][]int) (int, error) {
	file, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	repaired, err := Write(file, sents, heads)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return repaired, err
}
