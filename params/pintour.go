package params

import (
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/mitchellh/go-homedir"
)

func init() {
	metrics.Enabled = true
}

const (
	StoreDBName = "locations.db"

	ConfigFileName = "config"
	ConfigFileType = "yaml"

	// EnvPrefix namespaces environment overrides, eg. PINTOUR_TOUR_MAX_STOPS.
	EnvPrefix = "PINTOUR"
)

var StoreLocationsBucket = []byte("locations")
var StoreByTimeBucket = []byte("by_time")

var DefaultBatchSize = 1_000
var DefaultBufferSize = 10_000

// DatadirRoot is ~/.pintour.
var DatadirRoot = func() string {
	home, err := homedir.Dir()
	if err != nil {
		panic(err)
	}
	return filepath.Join(home, ".pintour")
}()

var DefaultDatadirRoot = DatadirRoot

func DefaultConfigFilePath() string {
	return filepath.Join(DatadirRoot, ConfigFileName+"."+ConfigFileType)
}

var (
	// CacheLastTourTTL is how long the last generated tour is replayed to new socket clients.
	CacheLastTourTTL = 24 * time.Hour

	// CacheDedupeSize bounds the ingestion dedupe cache.
	CacheDedupeSize = 10_000

	// CacheToursCapacity bounds how many generated tours one tour service keeps.
	CacheToursCapacity = 128

	// CacheRgeoSize bounds the reverse geocoder's memo of rounded points.
	CacheRgeoSize = 10_000
)
