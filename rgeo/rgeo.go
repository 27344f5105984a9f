package rgeo

import (
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/paulmach/orb"
	"github.com/rotblauer/pintour/common"
	srgeo "github.com/sams96/rgeo"
)

type ReverseGeocoder interface {
	GetLocation(pt orb.Point) (srgeo.Location, error)
}

// rR is the type of our wrapped rgeo.Rgeo instance, which implements the ReverseGeocoder interface.
type rR srgeo.Rgeo

func (rr *rR) GetLocation(pt orb.Point) (srgeo.Location, error) {
	return (*srgeo.Rgeo)(rr).ReverseGeocode(pt)
}

var (
	mu sync.Mutex
	r  ReverseGeocoder
)

var (
	ErrAlreadyInitialized = errors.New("rgeo already initialized")
	ErrNotInitialized     = errors.New("rgeo not initialized")
)

var (
	Countries10 = srgeo.Countries10
	Provinces10 = srgeo.Provinces10
)

// DefaultDatasets are enough to name a stop's country.
var DefaultDatasets = []func() []byte{Countries10}

// Init loads the datasets into the process-wide geocoder.
// It is slow (seconds) and memory hungry; call it once, at startup, and only if enrichment is wanted.
func Init(datasets ...func() []byte) error {
	mu.Lock()
	defer mu.Unlock()
	if r != nil {
		return ErrAlreadyInitialized
	}
	if len(datasets) == 0 {
		datasets = DefaultDatasets
	}
	r1, err := srgeo.New(datasets...)
	if err != nil {
		return fmt.Errorf("rgeo init: %w", err)
	}
	r = (*rR)(r1)
	return nil
}

// R returns the process-wide geocoder, or nil if Init has not been called.
func R() ReverseGeocoder {
	mu.Lock()
	defer mu.Unlock()
	return r
}

// CachedGeocoder memoizes country lookups by coordinates rounded to ~1 km.
type CachedGeocoder struct {
	rg    ReverseGeocoder
	cache *lru.Cache[orb.Point, string]
}

func NewCachedGeocoder(rg ReverseGeocoder, size int) (*CachedGeocoder, error) {
	if rg == nil {
		return nil, ErrNotInitialized
	}
	c, err := lru.New[orb.Point, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedGeocoder{rg: rg, cache: c}, nil
}

func cacheKey(pt orb.Point) orb.Point {
	return orb.Point{
		common.DecimalToFixed(pt.Lon(), common.GPSPrecision2),
		common.DecimalToFixed(pt.Lat(), common.GPSPrecision2),
	}
}

// Country names the country containing pt.
// Points in no country (eg. open ocean) return an error, which is not cached.
func (c *CachedGeocoder) Country(pt orb.Point) (string, error) {
	key := cacheKey(pt)
	if v, ok := c.cache.Get(key); ok {
		return v, nil
	}
	loc, err := c.rg.GetLocation(pt)
	if err != nil {
		return "", err
	}
	if loc.Country == "" {
		return "", srgeo.ErrLocationNotFound
	}
	c.cache.Add(key, loc.Country)
	return loc.Country, nil
}

func (c *CachedGeocoder) Len() int {
	return c.cache.Len()
}
