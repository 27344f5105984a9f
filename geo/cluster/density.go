package cluster

import (
	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/conceptual"
	"github.com/rotblauer/pintour/geo/region"
	"github.com/rotblauer/pintour/types/location"
)

// DefaultRadiusKm is both the density radius and the clustering link distance.
const DefaultRadiusKm = 1000.0

// arena holds one call's valid records by index, with everything
// the clustering loop asks about pairs of them precomputed.
// Records are addressed by index, never by value, so two pins that
// happen to share coordinates remain two pins.
type arena struct {
	records []location.Record
	regions []string
	// dist is the n*n haversine matrix, row-major.
	dist []float64
}

func newArena(valid []location.Record) *arena {
	n := len(valid)
	a := &arena{
		records: valid,
		regions: make([]string, n),
		dist:    make([]float64, n*n),
	}
	lats := make([]float64, n)
	lngs := make([]float64, n)
	for i, r := range valid {
		lats[i], lngs[i] = r.Lat(), r.Lng()
		a.regions[i] = region.Code(lats[i], lngs[i])
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := common.DistanceKm(lats[i], lngs[i], lats[j], lngs[j])
			a.dist[i*n+j] = d
			a.dist[j*n+i] = d
		}
	}
	return a
}

func (a *arena) len() int {
	return len(a.records)
}

func (a *arena) distance(i, j int) float64 {
	return a.dist[i*len(a.records)+j]
}

// density counts, for each record, the other records within radiusKm (inclusive).
func (a *arena) density(radiusKm float64) []int {
	n := a.len()
	scores := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && a.distance(i, j) <= radiusKm {
				scores[i]++
			}
		}
	}
	return scores
}

// DensityScores returns, for every valid record, how many other valid
// records lie within radiusKm of it. Invalid records are absent from the map.
//
// This is O(n^2) in time and memory; callers cap n (a few hundred).
func DensityScores(records []location.Record, radiusKm float64) map[conceptual.LocationID]int {
	valid := location.FilterValid(records)
	a := newArena(valid)
	scores := a.density(radiusKm)
	out := make(map[conceptual.LocationID]int, len(valid))
	for i, r := range valid {
		out[r.ID] = scores[i]
	}
	return out
}
