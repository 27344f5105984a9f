package common

/*
https://wiki.openstreetmap.org/wiki/Zoom_levels

Level 	Tile width (° of longitudes) 	m / pixel (on Equator) 	Examples of areas to represent
0 	360 	156 543 	whole world
2 	90 	39 136 	subcontinental area
3 	45 	19 568 	largest country
4 	22.5 	9 784
5 	11.25 	4 892 	large African country
7 	2.813 	1 223 	small country, US state
8 	1.406 	611.496
10 	0.352 	152.874 	metropolitan area
12 	0.088 	38.219 	town, or city district
*/

// SlippyZoomLevelT is a web-map (slippy map) zoom level.
// Larger is closer.
type SlippyZoomLevelT int

const (
	// SlippyZoomLevel0 represents, eg. the whole world
	SlippyZoomLevel0 SlippyZoomLevelT = 0
	SlippyZoomLevel1 SlippyZoomLevelT = 1

	// SlippyZoomLevel2 represents, eg. a subcontinental area
	SlippyZoomLevel2 SlippyZoomLevelT = 2

	// SlippyZoomLevel3 represents, eg. the largest country
	SlippyZoomLevel3 SlippyZoomLevelT = 3
	SlippyZoomLevel4 SlippyZoomLevelT = 4

	// SlippyZoomLevel5 represents, eg. a large African country
	SlippyZoomLevel5 SlippyZoomLevelT = 5
	// SlippyZoomLevel6 represents, eg. a large European country
	SlippyZoomLevel6 SlippyZoomLevelT = 6
	// SlippyZoomLevel7 represents, eg. a small country, US state
	SlippyZoomLevel7 SlippyZoomLevelT = 7
	SlippyZoomLevel8 SlippyZoomLevelT = 8
	// SlippyZoomLevel9 represents, eg. a wide area, large metropolitan area
	SlippyZoomLevel9 SlippyZoomLevelT = 9
	// SlippyZoomLevel10 represents, eg. a metropolitan area
	SlippyZoomLevel10 SlippyZoomLevelT = 10
	// SlippyZoomLevel11 represents, eg. a city
	SlippyZoomLevel11 SlippyZoomLevelT = 11
	// SlippyZoomLevel12 represents, eg. a town, or city district
	SlippyZoomLevel12 SlippyZoomLevelT = 12
)

// Min returns the lesser (farther out) of two zoom levels.
func (z SlippyZoomLevelT) Min(other SlippyZoomLevelT) SlippyZoomLevelT {
	if other < z {
		return other
	}
	return z
}
