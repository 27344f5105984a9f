package region

var nameRules = []rule{
	{box{MinLat: 5, MaxLat: 90, MinLng: -180, MaxLng: -125}, "Pacific North America"},
	{box{MinLat: 5, MaxLat: 90, MinLng: -180, MaxLng: -105}, "Mountain West"},
	{box{MinLat: 5, MaxLat: 90, MinLng: -180, MaxLng: -95}, "Central North America"},
	{box{MinLat: 5, MaxLat: 90, MinLng: -180, MaxLng: -80}, "Midwest"},
	{box{MinLat: 5, MaxLat: 90, MinLng: -180, MaxLng: -30}, "Eastern North America"},

	{box{MinLat: -10, MaxLat: 5, MinLng: -90, MaxLng: -30}, "Northern South America"},
	{box{MinLat: -30, MaxLat: 5, MinLng: -90, MaxLng: -30}, "Central South America"},
	{box{MinLat: -60, MaxLat: 5, MinLng: -90, MaxLng: -30}, "Southern South America"},

	{box{MinLat: 55, MaxLat: 72, MinLng: -30, MaxLng: 40}, "Northern Europe"},
	{box{MinLat: 35, MaxLat: 72, MinLng: -30, MaxLng: 15}, "Western Europe"},
	{box{MinLat: 35, MaxLat: 72, MinLng: -30, MaxLng: 40}, "Eastern Europe"},

	{box{MinLat: 12, MaxLat: 42, MinLng: 35, MaxLng: 63}, "Middle East"},

	{box{MinLat: 15, MaxLat: 35, MinLng: -30, MaxLng: 52}, "North Africa"},
	{box{MinLat: -5, MaxLat: 35, MinLng: -30, MaxLng: 15}, "West Africa"},
	{box{MinLat: -5, MaxLat: 35, MinLng: -30, MaxLng: 52}, "East Africa"},
	{box{MinLat: -40, MaxLat: 35, MinLng: -30, MaxLng: 52}, "Southern Africa"},

	{box{MinLat: -11, MaxLat: 23, MinLng: 92, MaxLng: 141}, "Southeast Asia"},

	{box{MinLat: -50, MaxLat: 0, MinLng: 160, MaxLng: 180}, "New Zealand"},
	{box{MinLat: -50, MaxLat: 0, MinLng: 110, MaxLng: 180}, "Australia"},

	{box{MinLat: 50, MaxLat: 82, MinLng: 40, MaxLng: 180}, "Northern Asia"},
	{box{MinLat: 5, MaxLat: 30, MinLng: 40, MaxLng: 92}, "South Asia"},
	{box{MinLat: 5, MaxLat: 82, MinLng: 100, MaxLng: 180}, "East Asia"},
	{box{MinLat: 5, MaxLat: 82, MinLng: 40, MaxLng: 180}, "Central Asia"},
}
