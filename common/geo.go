package common

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// EarthRadiusKm is the mean earth radius used for all great-circle distances.
// Note that orb.EarthRadius is the equatorial radius (6378137 m),
// which would shift every distance by ~0.1%.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine (great-circle) distance in kilometers
// between two coordinates given in degrees.
// s2.LatLng.Distance is the haversine formula, returning the central angle.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lng1)
	b := s2.LatLngFromDegrees(lat2, lng2)
	return a.Distance(b).Radians() * EarthRadiusKm
}

// PointDistanceKm is DistanceKm for orb points (which are [lng, lat]).
func PointDistanceKm(a, b orb.Point) float64 {
	return DistanceKm(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// PlanarDegreeDistance is the plain euclidean distance between two points
// measured in raw degrees. It is NOT a distance on the earth;
// it is a cheap, reproducible ordering metric.
func PlanarDegreeDistance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}
