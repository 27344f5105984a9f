package cluster

import (
	"github.com/montanaflynn/stats"
	"github.com/paulmach/orb"
	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/conceptual"
	"github.com/rotblauer/pintour/geo/region"
	"github.com/rotblauer/pintour/types/location"
)

// Cluster is a sealed group of pins.
// Its center is the plain arithmetic mean of member lat/lng (not a geodesic centroid),
// and its spread is the mean haversine distance of members from that center.
// Both are computed once, by Builder.Seal; a Cluster never changes afterward.
type Cluster struct {
	id        conceptual.ClusterID
	locations []location.Record

	center        orb.Point
	avgDistanceKm float64
	maxDistanceKm float64
}

func (c *Cluster) ID() conceptual.ClusterID {
	return c.id
}

// Locations returns the members in discovery order.
// The slice is a copy.
func (c *Cluster) Locations() []location.Record {
	out := make([]location.Record, len(c.locations))
	copy(out, c.locations)
	return out
}

// First returns the first member discovered, the seed.
func (c *Cluster) First() location.Record {
	return c.locations[0]
}

// Sample returns up to n members, in discovery order.
func (c *Cluster) Sample(n int) []location.Record {
	if n > len(c.locations) {
		n = len(c.locations)
	}
	if n < 0 {
		n = 0
	}
	out := make([]location.Record, n)
	copy(out, c.locations[:n])
	return out
}

func (c *Cluster) Count() int {
	return len(c.locations)
}

// Center is [lng, lat].
func (c *Cluster) Center() orb.Point {
	return c.center
}

func (c *Cluster) CenterLatitude() float64 {
	return c.center.Lat()
}

func (c *Cluster) CenterLongitude() float64 {
	return c.center.Lon()
}

// AverageDistanceFromCenter is in kilometers. It is 0 for a single pin.
func (c *Cluster) AverageDistanceFromCenter() float64 {
	return c.avgDistanceKm
}

// MaxDistanceFromCenter is in kilometers.
func (c *Cluster) MaxDistanceFromCenter() float64 {
	return c.maxDistanceKm
}

// Bound is the lat/lng box around all members.
func (c *Cluster) Bound() orb.Bound {
	mp := make(orb.MultiPoint, 0, len(c.locations))
	for _, l := range c.locations {
		mp = append(mp, l.Point())
	}
	return mp.Bound()
}

// RegionCode classifies the center. Note that the center of a
// chained cluster can, rarely, land outside its members' region.
func (c *Cluster) RegionCode() string {
	return region.Code(c.CenterLatitude(), c.CenterLongitude())
}

func (c *Cluster) RegionName() string {
	return region.Name(c.CenterLatitude(), c.CenterLongitude())
}

// Builder accumulates members for one cluster.
// It is the only way to make a Cluster.
type Builder struct {
	id        conceptual.ClusterID
	locations []location.Record
}

func NewBuilder(id conceptual.ClusterID) *Builder {
	return &Builder{id: id}
}

// Add appends a member. Order of Adds is the cluster's discovery order.
func (b *Builder) Add(r location.Record) {
	b.locations = append(b.locations, r)
}

func (b *Builder) Len() int {
	return len(b.locations)
}

// Seal computes the center and spread and returns the finished Cluster.
// It returns nil if nothing was added.
// The builder must not be used after Seal.
func (b *Builder) Seal() *Cluster {
	if len(b.locations) == 0 {
		return nil
	}
	lats := make(stats.Float64Data, len(b.locations))
	lngs := make(stats.Float64Data, len(b.locations))
	for i, l := range b.locations {
		lats[i] = l.Lat()
		lngs[i] = l.Lng()
	}
	// Mean only errors on empty input.
	centerLat, _ := lats.Mean()
	centerLng, _ := lngs.Mean()

	distances := make(stats.Float64Data, len(b.locations))
	for i := range b.locations {
		distances[i] = common.DistanceKm(lats[i], lngs[i], centerLat, centerLng)
	}
	avg, _ := distances.Mean()
	maxD, _ := distances.Max()

	c := &Cluster{
		id:            b.id,
		locations:     b.locations,
		center:        orb.Point{centerLng, centerLat},
		avgDistanceKm: avg,
		maxDistanceKm: maxD,
	}
	b.locations = nil
	return c
}

// New builds and seals a cluster from records, in order.
func New(id conceptual.ClusterID, records ...location.Record) *Cluster {
	b := NewBuilder(id)
	for _, r := range records {
		b.Add(r)
	}
	return b.Seal()
}
