package featurevector

// Indexer maps rendered feature keys to weight table rows
type Indexer interface {
	// Vectorize returns the row index of every key, in order. Keys the
	// indexer cannot resolve are left out of the result.
	Vectorize(keys []string) []int
	Len() int
}

// Vector is a sparse feature vector as a sequence of row indices.
// The same index may occur more than once.
type Vector []int
