package featurevector

import (
	"fmt"
	"sync"
)

// Vocabulary is the growing feature name to index mapping used while
// collecting training instances. Indices are allocated densely from 0.
type Vocabulary struct {
	mu    sync.RWMutex
	Enum  map[string]int
	Index []string
}

var _ Indexer = &Vocabulary{}

func NewVocabulary(capacity int) *Vocabulary {
	return &Vocabulary{
		Enum:  make(map[string]int, capacity),
		Index: make([]string, 0, capacity),
	}
}

// Add returns the index of key, allocating the next free index if the
// key is new. The second value reports whether an allocation happened.
func (v *Vocabulary) Add(key string) (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	enum, exists := v.Enum[key]
	if exists {
		return enum, false
	}
	enum = len(v.Index)
	v.Enum[key] = enum
	v.Index = append(v.Index, key)
	return enum, true
}

func (v *Vocabulary) IndexOf(key string) (int, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	enum, exists := v.Enum[key]
	return enum, exists
}

func (v *Vocabulary) ValueOf(index int) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if index < 0 || index >= len(v.Index) {
		panic(fmt.Sprintf("Unknown index requested: %v of %v", index, len(v.Index)))
	}
	return v.Index[index]
}

// Vectorize allocates an index for every unseen key
func (v *Vocabulary) Vectorize(keys []string) []int {
	retval := make([]int, len(keys))
	for i, key := range keys {
		retval[i], _ = v.Add(key)
	}
	return retval
}

func (v *Vocabulary) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.Index)
}

// Freeze returns a read-only copy of the current mapping. Later
// additions to v are not visible through the returned value.
func (v *Vocabulary) Freeze() *Frozen {
	v.mu.RLock()
	defer v.mu.RUnlock()
	enum := make(map[string]int, len(v.Enum))
	for k, val := range v.Enum {
		enum[k] = val
	}
	return &Frozen{enum: enum}
}

// Frozen is a read-only feature mapping. It is safe for concurrent use
// and never allocates an index.
type Frozen struct {
	enum map[string]int
}

var _ Indexer = &Frozen{}

// NewFrozen wraps a mapping restored from a stored model. The map is
// copied so later changes by the caller are not observed.
func NewFrozen(mapping map[string]int) (*Frozen, error) {
	enum := make(map[string]int, len(mapping))
	seen := make([]bool, len(mapping))
	for k, val := range mapping {
		if val < 0 || val >= len(mapping) {
			return nil, fmt.Errorf("feature %q has index %d outside [0,%d)", k, val, len(mapping))
		}
		if seen[val] {
			return nil, fmt.Errorf("feature %q reuses index %d", k, val)
		}
		seen[val] = true
		enum[k] = val
	}
	return &Frozen{enum: enum}, nil
}

func (f *Frozen) IndexOf(key string) (int, bool) {
	enum, exists := f.enum[key]
	return enum, exists
}

// Vectorize drops keys that were never seen during training
func (f *Frozen) Vectorize(keys []string) []int {
	retval := make([]int, 0, len(keys))
	for _, key := range keys {
		if enum, exists := f.enum[key]; exists {
			retval = append(retval, enum)
		}
	}
	return retval
}

func (f *Frozen) Len() int {
	return len(f.enum)
}

// Mapping returns a copy of the key to index mapping
func (f *Frozen) Mapping() map[string]int {
	retval := make(map[string]int, len(f.enum))
	for k, v := range f.enum {
		retval[k] = v
	}
	return retval
}
