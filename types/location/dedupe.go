package location

import (
	"fmt"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/mitchellh/hashstructure/v2"
)

// dedupeKey hashes what makes a pin push a repeat: the id and where it was.
// Descriptions and timestamps are allowed to drift between pushes.
type dedupeKey struct {
	ID  string
	Lat string
	Lng string
}

// NewDedupeLRUFunc returns a predicate passing only pins it has not
// recently seen. The cache holds the last size keys.
// The predicate is safe for concurrent use.
func NewDedupeLRUFunc(size int) func(Record) bool {
	var dedupeCache = lru.New(size)
	var mu sync.Mutex
	return func(r Record) bool {
		hash, err := hashstructure.Hash(dedupeKey{
			ID:  r.ID.String(),
			Lat: r.Latitude.String(),
			Lng: r.Longitude.String(),
		}, hashstructure.FormatV2, nil)
		if err != nil {
			return false
		}
		key := fmt.Sprintf("%d", hash)
		mu.Lock()
		defer mu.Unlock()
		if _, ok := dedupeCache.Get(key); ok {
			return false
		}
		dedupeCache.Add(key, true)
		return true
	}
}
