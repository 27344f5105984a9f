package location

import "github.com/shopspring/decimal"

var (
	maxAbsLatitude  = decimal.NewFromInt(90)
	maxAbsLongitude = decimal.NewFromInt(180)

	// originNoise is the half-width of the box around (0,0)
	// inside which a fix is considered a bogus default, not a place.
	originNoise = decimal.NewFromInt(1)
)

// IsValid tells if the record is usable for clustering.
//
// A usable record has an id, is not the Unknown sentinel,
// is not exactly at the origin, is not within 1 degree of the origin on both axes,
// and has |lat| <= 90 and |lng| <= 180.
// All conditions must hold; a nonzero latitude alone does not make a pin valid.
func (r Record) IsValid() bool {
	if r.ID.IsEmpty() || r.IsUnknown() {
		return false
	}
	lat, lng := r.Latitude.Abs(), r.Longitude.Abs()
	if lat.IsZero() && lng.IsZero() {
		return false
	}
	if lat.LessThan(originNoise) && lng.LessThan(originNoise) {
		return false
	}
	return lat.LessThanOrEqual(maxAbsLatitude) && lng.LessThanOrEqual(maxAbsLongitude)
}

// IsValid is the predicate form of Record.IsValid, for use as a filter.
func IsValid(r Record) bool {
	return r.IsValid()
}

// FilterValid returns the usable records in input order.
// Records repeating an id already seen are dropped; first occurrence wins.
func FilterValid(records []Record) []Record {
	out := make([]Record, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if !r.IsValid() {
			continue
		}
		if _, ok := seen[r.ID.String()]; ok {
			continue
		}
		seen[r.ID.String()] = struct{}{}
		out = append(out, r)
	}
	return out
}
