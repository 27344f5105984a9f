// Package region classifies coordinates into coarse continental bands.
//
// The bands are plain lat/lng rectangles checked in order; the first match wins.
// They are rough: a pin in the Gulf of Mexico is "North America".
//
// Codes and names are two separate tables. They happen to share boundaries today,
// but each is the source of truth for its own output; do not derive one from the other.
package region

// Fallthrough classifications.
const (
	CodeOcean      = "OCN"
	CodeAntarctica = "ANT"

	NameOcean      = "Open Ocean"
	NameAntarctica = "Antarctica"
)

// antarcticLatitude: unmatched points south of this are ANT, not OCN.
const antarcticLatitude = -60.0

// box is an inclusive lat/lng rectangle.
type box struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

func (b box) contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

type rule struct {
	box
	Label string
}

func classify(rules []rule, lat, lng float64) (string, bool) {
	for i := range rules {
		if rules[i].contains(lat, lng) {
			return rules[i].Label, true
		}
	}
	return "", false
}

// Code returns the region code for a coordinate, eg. "NAM-EAST".
// It is recomputed on every call.
func Code(lat, lng float64) string {
	if c, ok := classify(codeRules, lat, lng); ok {
		return c
	}
	if lat < antarcticLatitude {
		return CodeAntarctica
	}
	return CodeOcean
}

// Name returns a human-readable region name for a coordinate, eg. "Eastern North America".
func Name(lat, lng float64) string {
	if n, ok := classify(nameRules, lat, lng); ok {
		return n
	}
	if lat < antarcticLatitude {
		return NameAntarctica
	}
	return NameOcean
}
