package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "train.conll")
	require.NoError(t, os.WriteFile(filename, []byte("abc"), 0o644))

	digest, err := Digest(filename)
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", digest)

	_, err = Digest(filename + ".missing")
	assert.Error(t, err)
}
