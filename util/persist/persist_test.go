package persist

import (
	"errors"
	"testing"

	"github.com/Reem-Alatrash/Dependency-Parser/alg/featurevector"
	"github.com/Reem-Alatrash/Dependency-Parser/alg/perceptron"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(t *testing.T) *Model {
	vocab := featurevector.NewVocabulary(4)
	vocab.Vectorize([]string{"s0pos=NN", "b0pos=VB", "s0form=dogs"})
	weights := perceptron.NewWeightTable(3, 4)
	require.NoError(t, weights.Set(0, 1, 1.5))
	require.NoError(t, weights.Set(2, 3, -0.25))
	return &Model{Language: "english", Features: vocab.Freeze(), Weights: weights}
}

func stores(t *testing.T) map[string]Blobs {
	file, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	mem, err := OpenBadger(BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { mem.Close() })
	return map[string]Blobs{BACKEND_FILE: file, BACKEND_BADGER: mem}
}

func TestBlobsRoundTrip(t *testing.T) {
	for name, blobs := range stores(t) {
		t.Run(name, func(t *testing.T) {
			key := blobs.Key(WEIGHTS, "german")
			require.NoError(t, blobs.Put(key, []byte("first")))
			require.NoError(t, blobs.Put(key, []byte("second")))
			data, err := blobs.Get(key)
			require.NoError(t, err)
			assert.Equal(t, []byte("second"), data)

			_, err = blobs.Get(blobs.Key(WEIGHTS, "klingon"))
			assert.True(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "feature-map-english", (&FileStore{}).Key(FEATURE_MAP, "english"))
	assert.Equal(t, "weights/german", (&BadgerStore{}).Key(WEIGHTS, "german"))
}

func TestModelRoundTrip(t *testing.T) {
	for name, blobs := range stores(t) {
		t.Run(name, func(t *testing.T) {
			model := testModel(t)
			s := &ModelStore{Blobs: blobs}
			require.NoError(t, s.Save(model))

			loaded, err := s.Load("english", 4)
			require.NoError(t, err)
			assert.Equal(t, model.Features.Mapping(), loaded.Features.Mapping())
			assert.Equal(t, model.Weights, loaded.Weights)

			_, err = s.Load("english", 3)
			assert.Error(t, err)
			_, err = s.Load("german", 4)
			assert.True(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestEmptyModelRoundTrip(t *testing.T) {
	s := &ModelStore{Blobs: stores(t)[BACKEND_FILE]}
	vocab := featurevector.NewVocabulary(0)
	require.NoError(t, s.Save(&Model{Language: "english", Features: vocab.Freeze(), Weights: perceptron.NewWeightTable(0, 4)}))
	loaded, err := s.Load("english", 4)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Features.Len())
	assert.Equal(t, 0, loaded.Weights.Features)
}

func TestSaveMismatch(t *testing.T) {
	model := testModel(t)
	model.Weights = perceptron.NewWeightTable(2, 4)
	s := &ModelStore{Blobs: stores(t)[BACKEND_FILE]}
	assert.Error(t, s.Save(model))
}

func TestLoadCorrupt(t *testing.T) {
	blobs := stores(t)[BACKEND_FILE]
	s := &ModelStore{Blobs: blobs}
	require.NoError(t, s.Save(testModel(t)))
	require.NoError(t, blobs.Put(blobs.Key(WEIGHTS, "english"), []byte("not gob")))
	_, err := s.Load("english", 4)
	assert.Error(t, err)

	_, err = DecodeFeatures([]byte{0x01})
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	blobs, err := Open(BACKEND_FILE, t.TempDir(), nil)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, blobs)

	blobs, err = Open(BACKEND_BADGER, t.TempDir(), nil)
	require.NoError(t, err)
	assert.IsType(t, &BadgerStore{}, blobs)
	require.NoError(t, blobs.Close())

	_, err = Open("s3", "", nil)
	assert.Error(t, err)
}
