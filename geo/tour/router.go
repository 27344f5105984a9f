package tour

import (
	"github.com/paulmach/orb"
	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/geo/cluster"
	"github.com/rotblauer/pintour/params"
)

// ReferencePoint is the default tour start, [lng, lat].
var ReferencePoint = orb.Point{params.DefaultReferenceLng, params.DefaultReferenceLat}

// ArrangeByDistance orders clusters for viewing, starting from ReferencePoint.
// See ArrangeFrom.
func ArrangeByDistance(clusters []*cluster.Cluster) []*cluster.Cluster {
	return ArrangeFrom(clusters, ReferencePoint)
}

// ArrangeFrom orders clusters for a visually dramatic tour:
// first the cluster nearest ref, then repeatedly the remaining
// cluster farthest from the current one.
//
// Distances here are planar, in raw degrees, not haversine.
// Ties resolve to the earliest cluster in the input.
// The input slice is not modified.
func ArrangeFrom(clusters []*cluster.Cluster, ref orb.Point) []*cluster.Cluster {
	out := make([]*cluster.Cluster, 0, len(clusters))
	if len(clusters) == 0 {
		return out
	}

	remaining := make([]*cluster.Cluster, len(clusters))
	copy(remaining, clusters)

	take := func(i int) *cluster.Cluster {
		c := remaining[i]
		remaining = append(remaining[:i], remaining[i+1:]...)
		out = append(out, c)
		return c
	}

	nearest := 0
	nearestD := common.PlanarDegreeDistance(remaining[0].Center(), ref)
	for i := 1; i < len(remaining); i++ {
		if d := common.PlanarDegreeDistance(remaining[i].Center(), ref); d < nearestD {
			nearest, nearestD = i, d
		}
	}
	current := take(nearest)

	for len(remaining) > 0 {
		farthest := 0
		farthestD := common.PlanarDegreeDistance(remaining[0].Center(), current.Center())
		for i := 1; i < len(remaining); i++ {
			if d := common.PlanarDegreeDistance(remaining[i].Center(), current.Center()); d > farthestD {
				farthest, farthestD = i, d
			}
		}
		current = take(farthest)
	}
	return out
}
