package util

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Digest returns the hex md5 sum of the contents of filename. Training
// runs log it so a stored model can be traced back to its data.
func Digest(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	sum := md5.New()
	if _, err := io.Copy(sum, file); err != nil {
		return "", fmt.Errorf("digest %s: %w", filename, err)
	}
	return hex.EncodeToString(sum.Sum(nil)), nil
}
