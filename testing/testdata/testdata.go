package testdata

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/rotblauer/pintour/types/location"
)

// basepath is the root directory of this package.
var basepath string

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	basepath = filepath.Dir(currentFile)
}

// Path returns the absolute path the given relative file or directory path,
// relative to this testdata/ directory in the user's GOPATH.
// If rel is already absolute, it is returned unmodified.
// Taken from https://github.com/grpc/grpc-go/blob/master/testdata/testdata.go.
func Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}

	return filepath.Join(basepath, rel)
}

// Source_Pins is a small NDJSON history sample: a dense US east coast group,
// a few western pins, Europe, Asia, Oceania, plus junk (origin, unknown, out of range).
var Source_Pins = "./pins.ndjson"

// ReadSourceRecords decodes all pins in an NDJSON fixture.
func ReadSourceRecords(path string) ([]location.Record, error) {
	data, err := os.ReadFile(Path(path))
	if err != nil {
		return nil, err
	}
	return location.DecodeRecords(data)
}
