package tour

import (
	"fmt"

	"github.com/rotblauer/pintour/geo/cluster"
	"github.com/rotblauer/pintour/types/location"
)

const DefaultDescriptionMaxLen = 100

// GetLocationDescription is Describe with the default length limit.
func GetLocationDescription(c *cluster.Cluster) string {
	return Describe(c, DefaultDescriptionMaxLen)
}

// Describe labels a stop.
// A lone pin is described by its own text, shortened to maxLen characters;
// a group by the region name at its center and its size,
// eg. "Eastern North America (5 viewers)".
func Describe(c *cluster.Cluster, maxLen int) string {
	if c.Count() == 1 {
		return location.TruncateDescription(c.First().Description, maxLen)
	}
	return fmt.Sprintf("%s (%d viewers)", c.RegionName(), c.Count())
}
