package tour

import (
	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/geo/cluster"
)

// zoomTiers map a cluster's spread (mean km from center) to a zoom level.
// The first tier whose bound exceeds the spread wins.
var zoomTiers = []struct {
	belowKm float64
	zoom    common.SlippyZoomLevelT
}{
	{10, common.SlippyZoomLevel10},
	{50, common.SlippyZoomLevel8},
	{200, common.SlippyZoomLevel7},
	{500, common.SlippyZoomLevel5},
	{1000, common.SlippyZoomLevel4},
}

// DetermineZoomLevel picks a map zoom at which the whole cluster is in view,
// never closer than maxZoom.
// A lone pin gets a fixed zoom 8 (capped), regardless of spread.
func DetermineZoomLevel(c *cluster.Cluster, maxZoom common.SlippyZoomLevelT) common.SlippyZoomLevelT {
	if c.Count() == 1 {
		return common.SlippyZoomLevel8.Min(maxZoom)
	}
	spread := c.AverageDistanceFromCenter()
	for _, tier := range zoomTiers {
		if spread < tier.belowKm {
			return tier.zoom.Min(maxZoom)
		}
	}
	return common.SlippyZoomLevel3.Min(maxZoom)
}
