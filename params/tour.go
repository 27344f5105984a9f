package params

import (
	"time"

	"github.com/rotblauer/pintour/common"
)

type TourConfig struct {
	// RadiusKm is both the density radius and the link distance
	// between pins of one cluster.
	RadiusKm float64

	// ReferenceLat and ReferenceLng locate the tour's starting point.
	// The first stop is the cluster nearest to it.
	ReferenceLat float64
	ReferenceLng float64

	// MaxLocations caps how many records a single tour considers.
	// Clustering is quadratic; keep this in the hundreds.
	MaxLocations int

	// BulkLoadLimit caps how many records are loaded from history at once.
	BulkLoadLimit int

	// MaxStops caps the number of stops in a tour. Zero means no cap.
	MaxStops int

	MaxZoom common.SlippyZoomLevelT

	// SampleSize is how many members each stop carries along.
	SampleSize int

	DescriptionMaxLen int

	// CacheTTL is how long a generated tour is reused for identical input.
	CacheTTL time.Duration
}

// DefaultReferenceLat and DefaultReferenceLng are the geographic center
// of the contiguous United States (Lebanon, KS).
const (
	DefaultReferenceLat = 39.8283
	DefaultReferenceLng = -98.5795
)

func DefaultTourConfig() *TourConfig {
	return &TourConfig{
		RadiusKm:          1000,
		ReferenceLat:      DefaultReferenceLat,
		ReferenceLng:      DefaultReferenceLng,
		MaxLocations:      200,
		BulkLoadLimit:     500,
		MaxStops:          15,
		MaxZoom:           common.SlippyZoomLevel10,
		SampleSize:        10,
		DescriptionMaxLen: 100,
		CacheTTL:          time.Minute,
	}
}
