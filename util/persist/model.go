package persist

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/Reem-Alatrash/Dependency-Parser/alg/featurevector"
	"github.com/Reem-Alatrash/Dependency-Parser/alg/perceptron"

	"go.uber.org/zap"
)

// Model is a trained parser for one language: the feature name to row
// mapping and the averaged weights, one row per feature.
type Model struct {
	Language string
	Features *featurevector.Frozen
	Weights  *perceptron.WeightTable
}

// ModelStore reads and writes models through a blob store
type ModelStore struct {
	Blobs Blobs
	Log   *zap.Logger
}

func EncodeFeatures(features *featurevector.Frozen) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(features.Mapping()); err != nil {
		return nil, fmt.Errorf("encode feature map: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeFeatures(data []byte) (*featurevector.Frozen, error) {
	mapping := make(map[string]int)
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&mapping); err != nil {
		return nil, fmt.Errorf("decode feature map: %w", err)
	}
	return featurevector.NewFrozen(mapping)
}

func EncodeWeights(weights *perceptron.WeightTable) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(weights); err != nil {
		return nil, fmt.Errorf("encode weights: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeWeights(data []byte) (*perceptron.WeightTable, error) {
	weights := &perceptron.WeightTable{}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(weights); err != nil {
		return nil, fmt.Errorf("decode weights: %w", err)
	}
	if weights.Weights == nil {
		weights.Weights = []float64{}
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return weights, nil
}

// Save writes the feature map and the weights of model
func (s *ModelStore) Save(model *Model) error {
	if model.Features.Len() != model.Weights.Features {
		return fmt.Errorf("feature map has %d entries but weights have %d rows",
			model.Features.Len(), model.Weights.Features)
	}
	features, err := EncodeFeatures(model.Features)
	if err != nil {
		return err
	}
	weights, err := EncodeWeights(model.Weights)
	if err != nil {
		return err
	}
	featuresKey := s.Blobs.Key(FEATURE_MAP, model.Language)
	if err := s.Blobs.Put(featuresKey, features); err != nil {
		return fmt.Errorf("save %s: %w", featuresKey, err)
	}
	weightsKey := s.Blobs.Key(WEIGHTS, model.Language)
	if err := s.Blobs.Put(weightsKey, weights); err != nil {
		return fmt.Errorf("save %s: %w", weightsKey, err)
	}
	s.logger().Info("Saved model",
		zap.String("language", model.Language),
		zap.Int("features", model.Features.Len()),
		zap.Int("bytes", len(features)+len(weights)))
	return nil
}

// Load reads the model of language and checks that its parts agree
// with each other and with the expected number of classes.
func (s *ModelStore) Load(language string, classes int) (*Model, error) {
	featuresKey := s.Blobs.Key(FEATURE_MAP, language)
	data, err := s.Blobs.Get(featuresKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", featuresKey, err)
	}
	features, err := DecodeFeatures(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", featuresKey, err)
	}
	weightsKey := s.Blobs.Key(WEIGHTS, language)
	data, err = s.Blobs.Get(weightsKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", weightsKey, err)
	}
	weights, err := DecodeWeights(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", weightsKey, err)
	}
	if weights.Features != features.Len() {
		return nil, fmt.Errorf("model %s: feature map has %d entries but weights have %d rows",
			language, features.Len(), weights.Features)
	}
	if weights.Classes != classes {
		return nil, fmt.Errorf("model %s: weights have %d columns, expected %d", language, weights.Classes, classes)
	}
	s.logger().Info("Loaded model", zap.String("language", language), zap.Int("features", features.Len()))
	return &Model{Language: language, Features: features, Weights: weights}, nil
}

func (s *ModelStore) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
