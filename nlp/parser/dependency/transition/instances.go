package transition

import (
	"context"
	"errors"
	"runtime"

	"github.com/Reem-Alatrash/Dependency-Parser/alg/featurevector"
	"github.com/Reem-Alatrash/Dependency-Parser/alg/perceptron"
	nlp "github.com/Reem-Alatrash/Dependency-Parser/nlp/types"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GoldSequence is the oracle derivation of one sentence: the rendered
// feature keys of every visited configuration with its gold transition.
type GoldSequence struct {
	Sentence    int
	Keys        [][]string
	Transitions []Transition
	Err         *OracleError
}

// GoldInstances turns training sentences into perceptron instances.
// Oracle replay runs on up to Workers goroutines while a single owner
// consumes the finished sequences in input order, so vocabulary indices
// are the same for any number of workers and a skipped sentence never
// allocates an index. At most Workers sequences are held between
// replay and consumption.
type GoldInstances struct {
	TransFunc *ArcEager
	Extractor *Extractor
	Workers   int
	Log       *zap.Logger
}

func (g *GoldInstances) replay(i int, sent *nlp.Sentence, transFunc *ArcEager, extractor *Extractor) (*GoldSequence, error) {
	seq := &GoldSequence{Sentence: i}
	_, err := transFunc.Replay(i, sent, func(conf *ParserState, transition Transition) {
		seq.Keys = append(seq.Keys, extractor.Keys(conf, sent))
		seq.Transitions = append(seq.Transitions, transition)
	})
	if err != nil {
		var oracleErr *OracleError
		if !errors.As(err, &oracleErr) {
			return nil, err
		}
		seq.Keys, seq.Transitions, seq.Err = nil, nil, oracleErr
	}
	return seq, nil
}

// Each replays the oracle over every sentence and calls consume with
// the sequences in sentence order, from the calling goroutine.
// Sentences the oracle cannot derive carry an Err and no keys. An error
// from consume stops the replay and is returned.
func (g *GoldInstances) Each(ctx context.Context, sents []*nlp.Sentence, consume func(*GoldSequence) error) error {
	transFunc, extractor := g.TransFunc, g.Extractor
	if transFunc == nil {
		transFunc = &ArcEager{}
	}
	if extractor == nil {
		extractor = &Extractor{}
	}
	window := g.Workers
	if window <= 0 {
		window = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	pending := make([]chan *GoldSequence, len(sents))
	for i := range pending {
		pending[i] = make(chan *GoldSequence, 1)
	}
	slots := make(chan struct{}, window)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		for i, sent := range sents {
			select {
			case slots <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			i, sent := i, sent
			group.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				seq, err := g.replay(i, sent, transFunc, extractor)
				if err != nil {
					return err
				}
				pending[i] <- seq
				return nil
			})
		}
		return nil
	})

	var consumeErr error
	for i := range sents {
		var seq *GoldSequence
		select {
		case seq = <-pending[i]:
		case <-gctx.Done():
		}
		if seq == nil {
			break
		}
		<-slots
		if consumeErr = consume(seq); consumeErr != nil {
			cancel()
			break
		}
	}
	err := group.Wait()
	if consumeErr != nil {
		return consumeErr
	}
	if err != nil {
		return err
	}
	return ctx.Err()
}

// Sequences collects every sequence of Each
func (g *GoldInstances) Sequences(ctx context.Context, sents []*nlp.Sentence) ([]*GoldSequence, error) {
	results := make([]*GoldSequence, 0, len(sents))
	err := g.Each(ctx, sents, func(seq *GoldSequence) error {
		results = append(results, seq)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Instances replays the oracle over sents and vectorizes the result
// into vocab. It returns the instances in sentence order together with
// the errors of the sentences that were skipped.
func (g *GoldInstances) Instances(ctx context.Context, sents []*nlp.Sentence, vocab *featurevector.Vocabulary) ([]*perceptron.Instance, []*OracleError, error) {
	log := g.Log
	if log == nil {
		log = zap.NewNop()
	}
	var (
		instances []*perceptron.Instance
		skipped   []*OracleError
	)
	err := g.Each(ctx, sents, func(seq *GoldSequence) error {
		if seq.Err != nil {
			log.Warn("Skipping sentence", zap.Int("sentence", seq.Sentence), zap.Error(seq.Err))
			skipped = append(skipped, seq.Err)
			return nil
		}
		for i, keys := range seq.Keys {
			instances = append(instances, &perceptron.Instance{
				Class:    int(seq.Transitions[i]),
				Features: vocab.Vectorize(keys),
			})
			seq.Keys[i] = nil
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	log.Info("Collected gold instances",
		zap.Int("sentences", len(sents)),
		zap.Int("skipped", len(skipped)),
		zap.Int("instances", len(instances)),
		zap.Int("features", vocab.Len()))
	return instances, skipped, nil
}
