package perceptron

import "fmt"

// Guide scores classes for a feature vector against a weight table
type Guide struct {
	Weights *WeightTable
}

// Scores sums the weight of every feature occurrence for each class in
// classes. Scores of classes not in classes are left at zero.
func (g *Guide) Scores(features []int, classes []int) ([]float64, error) {
	w := g.Weights
	scores := make([]float64, w.Classes)
	for _, class := range classes {
		if class < 0 || class >= w.Classes {
			return nil, &ScoreError{-1, class, w.Features, w.Classes}
		}
	}
	for _, feature := range features {
		for _, class := range classes {
			value, err := w.At(feature, class)
			if err != nil {
				return nil, err
			}
			scores[class] += value
		}
	}
	return scores, nil
}

// Predict returns the highest scoring class among classes. Ties go to
// the lowest class code. A nil classes means all classes are eligible.
func (g *Guide) Predict(features []int, classes []int) (int, error) {
	if classes == nil {
		classes = AllClasses(g.Weights.Classes)
	}
	scores, err := g.Scores(features, classes)
	if err != nil {
		return 0, err
	}
	eligible := make([]bool, len(scores))
	for _, class := range classes {
		eligible[class] = true
	}
	best := -1
	for class, score := range scores {
		if !eligible[class] {
			continue
		}
		if best < 0 || score > scores[best] {
			best = class
		}
	}
	if best < 0 {
		return 0, &ScoreError{-1, -1, g.Weights.Features, g.Weights.Classes}
	}
	return best, nil
}

// Update applies the mistake driven perceptron update for one instance.
// It does nothing when predicted equals the gold class.
func (g *Guide) Update(instance *Instance, predicted int, cache *WeightTable, steps float64) error {
	gold := instance.Class
	if predicted == gold {
		return nil
	}
	w := g.Weights
	if cache.Features != w.Features || cache.Classes != w.Classes {
		return fmt.Errorf("cache table %dx%d does not match weights %dx%d",
			cache.Features, cache.Classes, w.Features, w.Classes)
	}
	for _, feature := range instance.Features {
		if err := w.check(feature, gold); err != nil {
			return err
		}
		if err := w.check(feature, predicted); err != nil {
			return err
		}
	}
	for _, feature := range instance.Features {
		w.add(feature, gold, 1.0)
		w.add(feature, predicted, -1.0)
		cache.add(feature, gold, steps)
		cache.add(feature, predicted, -steps)
	}
	return nil
}

func AllClasses(n int) []int {
	retval := make([]int, n)
	for i := range retval {
		retval[i] = i
	}
	return retval
}
