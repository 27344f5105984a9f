package region

// codeRules is ordered. Sub-bands of a continent are listed from the
// most specific threshold outward, so each later box only catches
// what the earlier ones left over.
// Southeast Asia sits before mainland Asia and Oceania, which both overlap it.
var codeRules = []rule{
	// North America: lat >= 5, lng in [-180, -30].
	{box{MinLat: 5, MaxLat: 90, MinLng: -180, MaxLng: -125}, "NAM-WEST"},
	{box{MinLat: 5, MaxLat: 90, MinLng: -180, MaxLng: -105}, "NAM-MOUNTAIN"},
	{box{MinLat: 5, MaxLat: 90, MinLng: -180, MaxLng: -95}, "NAM-CENTRAL"},
	{box{MinLat: 5, MaxLat: 90, MinLng: -180, MaxLng: -80}, "NAM-MIDWEST"},
	{box{MinLat: 5, MaxLat: 90, MinLng: -180, MaxLng: -30}, "NAM-EAST"},

	// South America.
	{box{MinLat: -10, MaxLat: 5, MinLng: -90, MaxLng: -30}, "SAM-NORTH"},
	{box{MinLat: -30, MaxLat: 5, MinLng: -90, MaxLng: -30}, "SAM-CENTRAL"},
	{box{MinLat: -60, MaxLat: 5, MinLng: -90, MaxLng: -30}, "SAM-SOUTH"},

	// Europe.
	{box{MinLat: 55, MaxLat: 72, MinLng: -30, MaxLng: 40}, "EUR-NORTH"},
	{box{MinLat: 35, MaxLat: 72, MinLng: -30, MaxLng: 15}, "EUR-WEST"},
	{box{MinLat: 35, MaxLat: 72, MinLng: -30, MaxLng: 40}, "EUR-EAST"},

	// Middle East.
	{box{MinLat: 12, MaxLat: 42, MinLng: 35, MaxLng: 63}, "MEA"},

	// Africa.
	{box{MinLat: 15, MaxLat: 35, MinLng: -30, MaxLng: 52}, "AFR-NORTH"},
	{box{MinLat: -5, MaxLat: 35, MinLng: -30, MaxLng: 15}, "AFR-WEST"},
	{box{MinLat: -5, MaxLat: 35, MinLng: -30, MaxLng: 52}, "AFR-EAST"},
	{box{MinLat: -40, MaxLat: 35, MinLng: -30, MaxLng: 52}, "AFR-SOUTH"},

	// Southeast Asia / Indonesia.
	{box{MinLat: -11, MaxLat: 23, MinLng: 92, MaxLng: 141}, "ASI-SOUTHEAST"},

	// Oceania.
	{box{MinLat: -50, MaxLat: 0, MinLng: 160, MaxLng: 180}, "OCE-NZ"},
	{box{MinLat: -50, MaxLat: 0, MinLng: 110, MaxLng: 180}, "OCE-AUS"},

	// Asia.
	{box{MinLat: 50, MaxLat: 82, MinLng: 40, MaxLng: 180}, "ASI-NORTH"},
	{box{MinLat: 5, MaxLat: 30, MinLng: 40, MaxLng: 92}, "ASI-SOUTH"},
	{box{MinLat: 5, MaxLat: 82, MinLng: 100, MaxLng: 180}, "ASI-EAST"},
	{box{MinLat: 5, MaxLat: 82, MinLng: 40, MaxLng: 180}, "ASI-CENTRAL"},
}
