package events

import (
	"github.com/ethereum/go-ethereum/event"
	"github.com/rotblauer/pintour/geo/tour"
	"github.com/rotblauer/pintour/types/location"
)

// NewLocationFeed is emitted for every new pin that is successfully persisted.
var NewLocationFeed = event.FeedOf[location.Record]{}

// HTTPPopulateFeed is a feed of pins as they are pushed to the server.
// The pins are decoded but not validated, deduped, nor necessarily persisted.
var HTTPPopulateFeed = event.FeedOf[[]location.Record]{}

// TourGeneratedFeed is emitted for every freshly built tour (not for cache hits).
var TourGeneratedFeed = event.FeedOf[*tour.Tour]{}
