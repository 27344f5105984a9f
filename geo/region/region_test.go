package region

import (
	"fmt"
	"testing"

	"github.com/rotblauer/pintour/testing/testdata"
)

func TestCode(t *testing.T) {
	cases := []struct {
		city testdata.City
		code string
	}{
		{testdata.Denver, "NAM-CENTRAL"},
		{testdata.London, "EUR-WEST"},
		{testdata.NewYork, "NAM-EAST"},
		{testdata.Boston, "NAM-EAST"},
		{testdata.Philadelphia, "NAM-EAST"},
		{testdata.Chicago, "NAM-MIDWEST"},
		{testdata.USCenter, "NAM-CENTRAL"},
		{testdata.LosAngeles, "NAM-MOUNTAIN"},
		{testdata.Seattle, "NAM-MOUNTAIN"},
		{testdata.Honolulu, "NAM-WEST"},
		{testdata.Bogota, "SAM-NORTH"},
		{testdata.SaoPaulo, "SAM-CENTRAL"},
		{testdata.BuenosAires, "SAM-SOUTH"},
		{testdata.Berlin, "EUR-WEST"},
		{testdata.Warsaw, "EUR-EAST"},
		{testdata.Stockholm, "EUR-NORTH"},
		{testdata.Moscow, "EUR-NORTH"},
		{testdata.Dubai, "MEA"},
		{testdata.Cairo, "AFR-NORTH"},
		{testdata.Lagos, "AFR-WEST"},
		{testdata.Nairobi, "AFR-EAST"},
		{testdata.Johannesburg, "AFR-SOUTH"},
		{testdata.Delhi, "ASI-SOUTH"},
		{testdata.Mumbai, "ASI-SOUTH"},
		{testdata.Almaty, "ASI-CENTRAL"},
		{testdata.Novosibirsk, "ASI-NORTH"},
		{testdata.Beijing, "ASI-EAST"},
		{testdata.Tokyo, "ASI-EAST"},
		{testdata.Bangkok, "ASI-SOUTHEAST"},
		{testdata.Singapore, "ASI-SOUTHEAST"},
		{testdata.Jakarta, "ASI-SOUTHEAST"},
		{testdata.Manila, "ASI-SOUTHEAST"},
		{testdata.Sydney, "OCE-AUS"},
		{testdata.Auckland, "OCE-NZ"},
	}
	for _, c := range cases {
		t.Run(c.city.Name, func(t *testing.T) {
			if got := Code(c.city.Lat, c.city.Lng); got != c.code {
				t.Errorf("expected %s, got %s", c.code, got)
			}
		})
	}
}

func TestCode_Fallthrough(t *testing.T) {
	cases := []struct {
		lat, lng float64
		code     string
	}{
		{-70, 0, CodeAntarctica},
		{-90, 0, CodeAntarctica},
		{-65, -70, CodeAntarctica},
		{0, -150, CodeOcean},
		{-55, 0, CodeOcean},
		{4.99, -100, CodeOcean},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v,%v", c.lat, c.lng), func(t *testing.T) {
			if got := Code(c.lat, c.lng); got != c.code {
				t.Errorf("expected %s, got %s", c.code, got)
			}
		})
	}
}

func TestCode_NorthAmericaThresholds(t *testing.T) {
	cases := []struct {
		lng  float64
		code string
	}{
		{-180, "NAM-WEST"},
		{-125, "NAM-WEST"},
		{-124.99, "NAM-MOUNTAIN"},
		{-105, "NAM-MOUNTAIN"},
		{-104.99, "NAM-CENTRAL"},
		{-95, "NAM-CENTRAL"},
		{-94.99, "NAM-MIDWEST"},
		{-80, "NAM-MIDWEST"},
		{-79.99, "NAM-EAST"},
		{-30, "NAM-EAST"},
	}
	for _, c := range cases {
		if got := Code(40, c.lng); got != c.code {
			t.Errorf("lng %v: expected %s, got %s", c.lng, c.code, got)
		}
	}
	if got := Code(5, -100); got != "NAM-CENTRAL" {
		t.Errorf("lat 5 is inside North America, got %s", got)
	}
}

func TestName(t *testing.T) {
	cases := []struct {
		city testdata.City
		name string
	}{
		{testdata.Denver, "Central North America"},
		{testdata.NewYork, "Eastern North America"},
		{testdata.Chicago, "Midwest"},
		{testdata.Seattle, "Mountain West"},
		{testdata.Honolulu, "Pacific North America"},
		{testdata.SaoPaulo, "Central South America"},
		{testdata.London, "Western Europe"},
		{testdata.Warsaw, "Eastern Europe"},
		{testdata.Stockholm, "Northern Europe"},
		{testdata.Dubai, "Middle East"},
		{testdata.Nairobi, "East Africa"},
		{testdata.Delhi, "South Asia"},
		{testdata.Tokyo, "East Asia"},
		{testdata.Singapore, "Southeast Asia"},
		{testdata.Sydney, "Australia"},
		{testdata.Auckland, "New Zealand"},
	}
	for _, c := range cases {
		t.Run(c.city.Name, func(t *testing.T) {
			if got := Name(c.city.Lat, c.city.Lng); got != c.name {
				t.Errorf("expected %s, got %s", c.name, got)
			}
		})
	}
	if got := Name(-70, 0); got != NameAntarctica {
		t.Errorf("expected %s, got %s", NameAntarctica, got)
	}
	if got := Name(0, -150); got != NameOcean {
		t.Errorf("expected %s, got %s", NameOcean, got)
	}
}

// The two tables are kept separately; walk a grid and make sure
// every point that gets a code also gets a name (and vice versa).
func TestCodeAndNameTablesAgreeOnCoverage(t *testing.T) {
	if len(codeRules) != len(nameRules) {
		t.Fatalf("tables differ in size: %d codes, %d names", len(codeRules), len(nameRules))
	}
	for lat := -89.5; lat < 90; lat += 2.5 {
		for lng := -179.5; lng < 180; lng += 2.5 {
			_, codeOK := classify(codeRules, lat, lng)
			_, nameOK := classify(nameRules, lat, lng)
			if codeOK != nameOK {
				t.Fatalf("%v,%v: code matched=%v, name matched=%v", lat, lng, codeOK, nameOK)
			}
		}
	}
}
