package testing

import (
	"os"
	"path/filepath"
)

const DefaultTestDirRoot = "pintour-test"

func DefaultTestDir() string {
	return filepath.Join(os.TempDir(), DefaultTestDirRoot)
}

// MustTempDir makes a fresh directory under DefaultTestDir.
func MustTempDir(pattern string) string {
	if err := os.MkdirAll(DefaultTestDir(), 0755); err != nil {
		panic(err)
	}
	d, err := os.MkdirTemp(DefaultTestDir(), pattern)
	if err != nil {
		panic(err)
	}
	return d
}
