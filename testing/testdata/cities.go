package testdata

import (
	"strconv"

	"github.com/rotblauer/pintour/conceptual"
	"github.com/rotblauer/pintour/types/location"
)

// City is a well known place used across tests.
type City struct {
	Name     string
	Lat, Lng float64
}

// Record returns a pin at the city with the given id,
// described by the city name.
func (c City) Record(id string) location.Record {
	return location.NewRecord(conceptual.LocationID(id), c.Lat, c.Lng, c.Name)
}

var (
	NewYork      = City{"New York, NY", 40.7128, -74.0060}
	Boston       = City{"Boston, MA", 42.3601, -71.0589}
	Philadelphia = City{"Philadelphia, PA", 39.9526, -75.1652}
	Chicago      = City{"Chicago, IL", 41.8781, -87.6298}
	Denver       = City{"Denver, CO", 39.7392, -104.9903}
	LosAngeles   = City{"Los Angeles, CA", 34.0522, -118.2437}
	Seattle      = City{"Seattle, WA", 47.6062, -122.3321}
	Honolulu     = City{"Honolulu, HI", 21.3069, -157.8583}
	// USCenter is the geographic center of the contiguous United States (Lebanon, KS).
	USCenter     = City{"Lebanon, KS", 39.8283, -98.5795}
	Bogota       = City{"Bogota", 4.7110, -74.0721}
	SaoPaulo     = City{"Sao Paulo", -23.5505, -46.6333}
	BuenosAires  = City{"Buenos Aires", -34.6037, -58.3816}
	London       = City{"London", 51.5074, -0.1278}
	Paris        = City{"Paris", 48.8566, 2.3522}
	Berlin       = City{"Berlin", 52.5200, 13.4050}
	Warsaw       = City{"Warsaw", 52.2297, 21.0122}
	Stockholm    = City{"Stockholm", 59.3293, 18.0686}
	Moscow       = City{"Moscow", 55.7558, 37.6173}
	Dubai        = City{"Dubai", 25.2048, 55.2708}
	Cairo        = City{"Cairo", 30.0444, 31.2357}
	Lagos        = City{"Lagos", 6.5244, 3.3792}
	Nairobi      = City{"Nairobi", -1.2921, 36.8219}
	Johannesburg = City{"Johannesburg", -26.2041, 28.0473}
	Delhi        = City{"Delhi", 28.6139, 77.2090}
	Mumbai       = City{"Mumbai", 19.0760, 72.8777}
	Almaty       = City{"Almaty", 43.2220, 76.8512}
	Novosibirsk  = City{"Novosibirsk", 55.0084, 82.9357}
	Beijing      = City{"Beijing", 39.9042, 116.4074}
	Tokyo        = City{"Tokyo", 35.6762, 139.6503}
	Bangkok      = City{"Bangkok", 13.7563, 100.5018}
	Singapore    = City{"Singapore", 1.3521, 103.8198}
	Jakarta      = City{"Jakarta", -6.2088, 106.8456}
	Manila       = City{"Manila", 14.5995, 120.9842}
	Sydney       = City{"Sydney", -33.8688, 151.2093}
	Auckland     = City{"Auckland", -36.8485, 174.7633}
)

// Records returns one pin per city, with ids "<prefix>0", "<prefix>1", ...
func Records(prefix string, cities ...City) []location.Record {
	out := make([]location.Record, len(cities))
	for i, c := range cities {
		out[i] = c.Record(prefix + strconv.Itoa(i))
	}
	return out
}

