package cluster

import (
	"fmt"
	"sort"

	"github.com/rotblauer/pintour/conceptual"
	"github.com/rotblauer/pintour/types/location"
)

// Generate groups records into clusters with the default 1000 km radius.
// See GenerateWithRadius.
func Generate(records []location.Record) []*Cluster {
	return GenerateWithRadius(records, DefaultRadiusKm)
}

// GenerateWithRadius groups records into spatially and regionally coherent clusters.
//
// Invalid records (and repeated ids) are dropped. The rest are visited in
// descending density order, ties kept in input order. Each unvisited record seeds a
// breadth-first expansion: a popped node joins the cluster, then every unvisited record
// within radiusKm of that node, and in the same region as that node, is queued.
// Membership is therefore chained; a cluster can span more than radiusKm end to end.
//
// Clusters are returned in seed order. The result is identical for identical input.
// Cost is O(n^2); callers must cap the input.
func GenerateWithRadius(records []location.Record, radiusKm float64) []*Cluster {
	valid := location.FilterValid(records)
	clusters := make([]*Cluster, 0)
	if len(valid) == 0 {
		return clusters
	}

	a := newArena(valid)
	n := a.len()
	scores := a.density(radiusKm)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	processed := make([]bool, n)
	for _, seed := range order {
		if processed[seed] {
			continue
		}
		b := NewBuilder(clusterID(len(clusters), a.records[seed].ID))
		queue := []int{seed}
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			if processed[node] {
				continue
			}
			processed[node] = true
			b.Add(a.records[node])

			for j := 0; j < n; j++ {
				if processed[j] {
					continue
				}
				if a.regions[j] != a.regions[node] {
					continue
				}
				if a.distance(node, j) > radiusKm {
					continue
				}
				queue = append(queue, j)
			}
		}
		clusters = append(clusters, b.Seal())
	}
	return clusters
}

func clusterID(i int, seed conceptual.LocationID) conceptual.ClusterID {
	return conceptual.ClusterID(fmt.Sprintf("%d.%s", i, seed))
}
