package cache

import (
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/rotblauer/pintour/geo/tour"
	"github.com/rotblauer/pintour/params"
	"github.com/rotblauer/pintour/types/location"
)

const lastTourKey = "last"

// LastTourTTLCache holds the most recently generated tour,
// replayed to websocket clients on connect.
var LastTourTTLCache = ttlcache.New[string, *tour.Tour](
	ttlcache.WithTTL[string, *tour.Tour](params.CacheLastTourTTL))

func SetLastTour(t *tour.Tour) {
	LastTourTTLCache.Set(lastTourKey, t, ttlcache.DefaultTTL)
}

// GetLastTour returns nil if there is none, or it expired.
func GetLastTour() *tour.Tour {
	item := LastTourTTLCache.Get(lastTourKey)
	if item == nil {
		return nil
	}
	return item.Value()
}

// NewTourCache returns a cache of generated tours keyed by TourKey,
// holding at most capacity tours (least recently used go first).
// A ttl <= 0 disables expiry; a capacity <= 0 disables the bound.
// Expired tours are only deleted while the cache is Start()ed.
func NewTourCache(ttl time.Duration, capacity int) *ttlcache.Cache[uint64, *tour.Tour] {
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	opts := []ttlcache.Option[uint64, *tour.Tour]{
		ttlcache.WithTTL[uint64, *tour.Tour](ttl),
		ttlcache.WithDisableTouchOnHit[uint64, *tour.Tour](),
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[uint64, *tour.Tour](uint64(capacity)))
	}
	return ttlcache.New[uint64, *tour.Tour](opts...)
}

// tourKeyPin is every field of a record that can reach a tour.
type tourKeyPin struct {
	ID          string
	Lat         string
	Lng         string
	Description string
	Service     string
	UserRole    string
	Timestamp   string
}

// TourKey hashes the ordered records.
// Equal keys mean the same tour, for a fixed config.
func TourKey(records []location.Record) (uint64, error) {
	pins := make([]tourKeyPin, len(records))
	for i, r := range records {
		pins[i] = tourKeyPin{
			ID:          r.ID.String(),
			Lat:         r.Latitude.String(),
			Lng:         r.Longitude.String(),
			Description: r.Description,
			Service:     r.Service,
			UserRole:    r.UserRole,
			Timestamp:   r.Timestamp.UTC().Format(time.RFC3339Nano),
		}
	}
	hash, err := hashstructure.Hash(pins, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("tour key: %w", err)
	}
	return hash, nil
}
