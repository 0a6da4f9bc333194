package transition

import (
	"context"
	"fmt"

	"github.com/Reem-Alatrash/Dependency-Parser/alg/featurevector"
	"github.com/Reem-Alatrash/Dependency-Parser/alg/perceptron"
	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Deterministic is the greedy parser: at every configuration it applies
// the best scoring legal transition. The feature mapping and weights
// are only read, so one Deterministic may parse many sentences at once.
type Deterministic struct {
	TransFunc *ArcEager
	Extractor *Extractor
	Features  *featurevector.Frozen
	Guide     *perceptron.Guide
	Log       *zap.Logger
}

// Parse runs sent to a terminal configuration
func (d *Deterministic) Parse(sent *nlp.Sentence) (*ParserState, error) {
	if d.Guide == nil || d.Features == nil {
		panic("Can't parse without a model")
	}
	transFunc, extractor := d.TransFunc, d.Extractor
	if transFunc == nil {
		transFunc = &ArcEager{}
	}
	if extractor == nil {
		extractor = &Extractor{}
	}
	c := NewParserState(sent.Len())
	for !c.Terminal() {
		legal := transFunc.Legal(c)
		features := extractor.Features(c, sent, d.Features)
		predicted, err := d.Guide.Predict(features, Codes(legal))
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", c.Steps, err)
		}
		transFunc.Transition(c, Transition(predicted))
	}
	return c, nil
}

// ParseAll parses sents on up to workers goroutines and returns the
// terminal configurations in input order. The first error cancels the
// remaining work.
func (d *Deterministic) ParseAll(ctx context.Context, sents []*nlp.Sentence, workers int) ([]*ParserState, error) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	results := make([]*ParserState, len(sents))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, sent := range sents {
		i, sent := i, sent
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			conf, err := d.Parse(sent)
			if err != nil {
				return fmt.Errorf("sentence %d: %w", i, err)
			}
			results[i] = conf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug("Parsed sentences", zap.Int("sentences", len(sents)), zap.Int("workers", workers))
	return results, nil
}
