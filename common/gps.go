package common

/*
https://en.wikipedia.org/wiki/Decimal_degrees?useskin=vector

decimal places 	decimal degrees 	Object that can be unambiguously recognized at this scale 	N/S or E/W at equator
0 	1.0 	country or large region 	111 km
1 	0.1 	large city or district 	11.1 km
2 	0.01 	town or village 	1.11 km
3 	0.001 	neighborhood, street 	111 m
4 	0.0001 	individual street, large buildings 	11.1 m
5 	0.00001 	individual trees, houses 	1.11 m
6 	0.000001 	individual humans 	111 mm
*/

const (
	// GPSPrecision0 is the precision for country or large region
	GPSPrecision0 = 0
	// GPSPrecision1 is the precision for large city or district
	GPSPrecision1 = 1
	// GPSPrecision2 is the precision for town or village
	GPSPrecision2 = 2
	// GPSPrecision3 is the precision for neighborhood, street
	GPSPrecision3 = 3
	// GPSPrecision4 is the precision for individual street, large buildings
	GPSPrecision4 = 4
	// GPSPrecision5 is the precision for individual trees, houses
	GPSPrecision5 = 5
	// GPSPrecision6 is the finest precision a viewer pin is stored at.
	GPSPrecision6 = 6
)
