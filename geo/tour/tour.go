package tour

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/conceptual"
	"github.com/rotblauer/pintour/geo/cluster"
	"github.com/rotblauer/pintour/params"
	"github.com/rotblauer/pintour/types/location"
)

// Stop is one point of a tour: where to fly, how close, and what to say.
type Stop struct {
	Index             int                     `json:"index"`
	ClusterID         conceptual.ClusterID    `json:"clusterId"`
	Latitude          float64                 `json:"latitude"`
	Longitude         float64                 `json:"longitude"`
	Zoom              common.SlippyZoomLevelT `json:"zoom"`
	Description       string                  `json:"description"`
	RegionCode        string                  `json:"regionCode"`
	RegionName        string                  `json:"regionName"`
	Count             int                     `json:"count"`
	AverageDistanceKm float64                 `json:"averageDistanceKm"`
	Sample            []location.Record       `json:"sample"`

	// Country is filled in by reverse geocoding, when available.
	Country string `json:"country,omitempty"`
}

func (s Stop) Point() orb.Point {
	return orb.Point{s.Longitude, s.Latitude}
}

// Tour is an ordered list of stops.
type Tour struct {
	// Locations is the number of valid records considered.
	Locations int `json:"locations"`
	// Clusters is the number of clusters found, which may exceed len(Stops).
	Clusters int    `json:"clusters"`
	Stops    []Stop `json:"stops"`
}

// Build clusters records, orders the clusters and renders them as stops.
// Only the first config.MaxLocations valid records, in caller order, are considered.
// A nil config means params.DefaultTourConfig().
// The same input and config always yield the same tour.
func Build(records []location.Record, config *params.TourConfig) *Tour {
	if config == nil {
		config = params.DefaultTourConfig()
	}
	valid := location.FilterValid(records)
	if config.MaxLocations > 0 && len(valid) > config.MaxLocations {
		valid = valid[:config.MaxLocations]
	}

	clusters := cluster.GenerateWithRadius(valid, config.RadiusKm)
	ordered := ArrangeFrom(clusters, orb.Point{config.ReferenceLng, config.ReferenceLat})
	if config.MaxStops > 0 && len(ordered) > config.MaxStops {
		ordered = ordered[:config.MaxStops]
	}

	t := &Tour{
		Locations: len(valid),
		Clusters:  len(clusters),
		Stops:     make([]Stop, 0, len(ordered)),
	}
	for i, c := range ordered {
		t.Stops = append(t.Stops, NewStop(i, c, config))
	}
	return t
}

// NewStop renders one cluster as the i'th stop.
func NewStop(i int, c *cluster.Cluster, config *params.TourConfig) Stop {
	return Stop{
		Index:             i,
		ClusterID:         c.ID(),
		Latitude:          c.CenterLatitude(),
		Longitude:         c.CenterLongitude(),
		Zoom:              DetermineZoomLevel(c, config.MaxZoom),
		Description:       Describe(c, config.DescriptionMaxLen),
		RegionCode:        c.RegionCode(),
		RegionName:        c.RegionName(),
		Count:             c.Count(),
		AverageDistanceKm: c.AverageDistanceFromCenter(),
		Sample:            c.Sample(config.SampleSize),
	}
}

// IsEmpty tells if the tour has nowhere to go.
func (t *Tour) IsEmpty() bool {
	return t == nil || len(t.Stops) == 0
}

// FeatureCollection renders the stops as GeoJSON points, in tour order.
func (t *Tour) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, s := range t.Stops {
		f := geojson.NewFeature(s.Point())
		f.ID = string(s.ClusterID)
		f.Properties["index"] = s.Index
		f.Properties["zoom"] = int(s.Zoom)
		f.Properties["description"] = s.Description
		f.Properties["region"] = s.RegionCode
		f.Properties["regionName"] = s.RegionName
		f.Properties["count"] = s.Count
		f.Properties["averageDistanceKm"] = common.DecimalToFixed(s.AverageDistanceKm, common.GPSPrecision3)
		if s.Country != "" {
			f.Properties["country"] = s.Country
		}
		fc.Append(f)
	}
	return fc
}
