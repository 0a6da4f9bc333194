package perceptron

import (
	"fmt"

	"github.com/Reem-Alatrash/Dependency-Parser/alg/featurevector"
)

// Instance is a single training example: the gold class observed at a
// configuration and the feature vector extracted from it.
type Instance struct {
	Class    int
	Features featurevector.Vector
}

// ScoreError reports a feature or class that falls outside the weight table
type ScoreError struct {
	Feature, Class int
	Rows, Columns  int
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("weight lookup out of range: feature %d, transition %d (table is %dx%d)",
		e.Feature, e.Class, e.Rows, e.Columns)
}

// WeightTable holds one weight per (feature row, class column)
type WeightTable struct {
	Features, Classes int
	Weights           []float64
}

func NewWeightTable(features, classes int) *WeightTable {
	return &WeightTable{
		Features: features,
		Classes:  classes,
		Weights:  make([]float64, features*classes),
	}
}

func (w *WeightTable) check(feature, class int) error {
	if feature < 0 || feature >= w.Features || class < 0 || class >= w.Classes {
		return &ScoreError{feature, class, w.Features, w.Classes}
	}
	return nil
}

func (w *WeightTable) At(feature, class int) (float64, error) {
	if err := w.check(feature, class); err != nil {
		return 0, err
	}
	return w.Weights[feature*w.Classes+class], nil
}

func (w *WeightTable) Set(feature, class int, value float64) error {
	if err := w.check(feature, class); err != nil {
		return err
	}
	w.Weights[feature*w.Classes+class] = value
	return nil
}

func (w *WeightTable) add(feature, class int, amount float64) {
	w.Weights[feature*w.Classes+class] += amount
}

// Validate checks the table's shape against its backing slice, for
// tables restored from storage.
func (w *WeightTable) Validate() error {
	if w.Features < 0 || w.Classes <= 0 {
		return fmt.Errorf("invalid weight table shape %dx%d", w.Features, w.Classes)
	}
	if len(w.Weights) != w.Features*w.Classes {
		return fmt.Errorf("weight table %dx%d has %d values", w.Features, w.Classes, len(w.Weights))
	}
	return nil
}

func (w *WeightTable) Copy() *WeightTable {
	retval := &WeightTable{w.Features, w.Classes, make([]float64, len(w.Weights))}
	copy(retval.Weights, w.Weights)
	return retval
}
