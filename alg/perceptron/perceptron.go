package perceptron

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultEpochs = 10
	DefaultSeed   = 333
)

// EpochStats summarizes a single pass over the training instances
type EpochStats struct {
	Epoch, Instances, Mistakes int
}

func (s EpochStats) Accuracy() float64 {
	if s.Instances == 0 {
		return 0
	}
	return float64(s.Instances-s.Mistakes) / float64(s.Instances)
}

// Trainer fits a weight table with the averaged perceptron. It owns the
// live weights, the averaging cache and the step counter for the
// duration of a run. A Trainer is not safe for concurrent use.
type Trainer struct {
	Epochs  int
	Seed    int64
	Classes int
	RunID   string
	Log     *zap.Logger

	weights, cache *WeightTable
	steps          float64
	History        []EpochStats
}

// Train runs the configured number of epochs over instances and returns
// the averaged weights. The first epoch visits instances in the given
// order; every later epoch reshuffles the previous epoch's order with a
// generator seeded once per run.
func (t *Trainer) Train(instances []*Instance, features int) (*WeightTable, error) {
	if t.Classes <= 0 {
		return nil, errors.New("trainer needs a positive number of classes")
	}
	if t.Epochs <= 0 {
		t.Epochs = DefaultEpochs
	}
	if t.Log == nil {
		t.Log = zap.NewNop()
	}
	if t.RunID == "" {
		t.RunID = uuid.NewString()
	}
	log := t.Log.With(zap.String("run", t.RunID))

	t.weights = NewWeightTable(features, t.Classes)
	t.cache = NewWeightTable(features, t.Classes)
	t.steps = 0
	t.History = make([]EpochStats, 0, t.Epochs)
	guide := &Guide{Weights: t.weights}

	order := make([]*Instance, len(instances))
	copy(order, instances)
	random := rand.New(rand.NewSource(t.Seed))

	log.Info("Training",
		zap.Int("instances", len(order)),
		zap.Int("features", features),
		zap.Int("epochs", t.Epochs),
		zap.Int64("seed", t.Seed))
	for epoch := 0; epoch < t.Epochs; epoch++ {
		if epoch > 0 {
			random.Shuffle(len(order), func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
		}
		stats := EpochStats{Epoch: epoch}
		for i, instance := range order {
			t.steps++
			predicted, err := guide.Predict(instance.Features, nil)
			if err != nil {
				return nil, fmt.Errorf("epoch %d instance %d: %w", epoch, i, err)
			}
			stats.Instances++
			if predicted != instance.Class {
				stats.Mistakes++
				if err := guide.Update(instance, predicted, t.cache, t.steps); err != nil {
					return nil, fmt.Errorf("epoch %d instance %d: %w", epoch, i, err)
				}
			}
		}
		t.History = append(t.History, stats)
		log.Info("Epoch done",
			zap.Int("epoch", epoch),
			zap.Int("instances", stats.Instances),
			zap.Int("mistakes", stats.Mistakes),
			zap.Float64("accuracy", stats.Accuracy()))
	}
	return Average(t.weights, t.cache, t.steps), nil
}

// Steps is the number of instances seen so far in the run
func (t *Trainer) Steps() float64 {
	return t.steps
}

// Raw returns the live, non averaged weights of the last run
func (t *Trainer) Raw() *WeightTable {
	return t.weights
}

// Average computes weights - cache/steps elementwise. This is not exact
// averaging: the cache records the step count at update time, not a per
// feature last-update timestamp. With no steps the weights are returned
// unchanged (as a copy).
func Average(weights, cache *WeightTable, steps float64) *WeightTable {
	avg := weights.Copy()
	if steps == 0 {
		return avg
	}
	scale := 1 / steps
	for i, cached := range cache.Weights {
		avg.Weights[i] = avg.Weights[i] - cached*scale
	}
	return avg
}
