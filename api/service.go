package api

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/jellydator/ttlcache/v3"
	"github.com/paulmach/orb"
	"github.com/rotblauer/pintour/events"
	"github.com/rotblauer/pintour/geo/tour"
	"github.com/rotblauer/pintour/locdb/cache"
	"github.com/rotblauer/pintour/locdb/flat"
	"github.com/rotblauer/pintour/metrics/influxdb"
	"github.com/rotblauer/pintour/params"
	"github.com/rotblauer/pintour/stream"
	"github.com/rotblauer/pintour/types/location"
)

var ErrNoSource = errors.New("tour service has no location source")

// LocationSource supplies history, newest first.
type LocationSource interface {
	RecentLocations(limit int) ([]location.Record, error)
}

// CountryNamer names the country at a point.
type CountryNamer interface {
	Country(pt orb.Point) (string, error)
}

// TourSummary is a short record of one generated tour.
type TourSummary struct {
	Generated time.Time `json:"generated"`
	Locations int       `json:"locations"`
	Clusters  int       `json:"clusters"`
	Stops     int       `json:"stops"`
	Elapsed   string    `json:"elapsed"`
}

// TourService builds tours from a location source,
// reusing a tour for identical input within the configured TTL.
// Returned tours are shared; callers must not modify them.
type TourService struct {
	config *params.TourConfig
	source LocationSource

	cache   *ttlcache.Cache[uint64, *tour.Tour]
	namer   CountryNamer
	influx  *params.InfluxConfig
	archive *flat.Flat
	recent  *stream.RingBuffer[TourSummary]

	logger *slog.Logger
	timer  metrics.Timer
	hits   metrics.Counter

	closeOnce sync.Once
}

type Option func(s *TourService)

// WithCountryNamer enriches each stop with its country.
func WithCountryNamer(n CountryNamer) Option {
	return func(s *TourService) {
		s.namer = n
	}
}

// WithInflux exports every generated tour's stops.
func WithInflux(config *params.InfluxConfig) Option {
	return func(s *TourService) {
		s.influx = config
	}
}

// WithArchive appends every generated tour to the flat tours file.
func WithArchive(f *flat.Flat) Option {
	return func(s *TourService) {
		s.archive = f
	}
}

// NewTourService returns a service over source, which may be nil
// if only GenerateFrom is used. A nil config means params.DefaultTourConfig().
func NewTourService(config *params.TourConfig, source LocationSource, opts ...Option) *TourService {
	if config == nil {
		config = params.DefaultTourConfig()
	}
	s := &TourService{
		config: config,
		source: source,
		cache:  cache.NewTourCache(config.CacheTTL, params.CacheToursCapacity),
		recent: stream.NewRingBuffer[TourSummary](10),
		logger: slog.With("svc", "tour"),
		timer:  metrics.GetOrRegisterTimer("tour/generate", nil),
		hits:   metrics.GetOrRegisterCounter("tour/cache/hits", nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.cache.Start()
	return s
}

// Close stops the tour cache's expiry loop. It is safe to call more than once.
func (s *TourService) Close() {
	s.closeOnce.Do(s.cache.Stop)
}

func (s *TourService) Config() *params.TourConfig {
	return s.config
}

// Generate builds a tour from the most recent history.
func (s *TourService) Generate(ctx context.Context) (*tour.Tour, error) {
	if s.source == nil {
		return nil, ErrNoSource
	}
	records, err := s.source.RecentLocations(s.config.BulkLoadLimit)
	if err != nil {
		return nil, err
	}
	return s.GenerateFrom(ctx, records)
}

// GenerateFrom builds a tour from records, in caller order.
func (s *TourService) GenerateFrom(ctx context.Context, records []location.Record) (*tour.Tour, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	valid := location.FilterValid(records)
	if s.config.MaxLocations > 0 && len(valid) > s.config.MaxLocations {
		valid = valid[:s.config.MaxLocations]
	}

	key, err := cache.TourKey(valid)
	if err != nil {
		return nil, err
	}
	if item := s.cache.Get(key); item != nil {
		s.hits.Inc(1)
		s.logger.Debug("Tour cache hit", "locations", len(valid))
		return item.Value(), nil
	}

	started := time.Now()
	t := tour.Build(valid, s.config)
	s.enrich(t)
	s.timer.UpdateSince(started)

	summary := TourSummary{
		Generated: started.UTC(),
		Locations: t.Locations,
		Clusters:  t.Clusters,
		Stops:     len(t.Stops),
		Elapsed:   time.Since(started).Round(time.Microsecond).String(),
	}
	s.logger.Info("Generated tour",
		"locations", summary.Locations, "clusters", summary.Clusters,
		"stops", summary.Stops, "elapsed", summary.Elapsed)

	s.export(t, started)
	s.cache.Set(key, t, ttlcache.DefaultTTL)
	s.recent.Add(summary)
	cache.SetLastTour(t)
	events.TourGeneratedFeed.Send(t)
	return t, nil
}

// Recent summarizes the last tours generated, oldest first.
func (s *TourService) Recent() []TourSummary {
	return s.recent.Get()
}

func (s *TourService) enrich(t *tour.Tour) {
	if s.namer == nil {
		return
	}
	for i := range t.Stops {
		country, err := s.namer.Country(t.Stops[i].Point())
		if err != nil {
			s.logger.Debug("No country for stop", "stop", i, "error", err)
			continue
		}
		t.Stops[i].Country = country
	}
}

// export failures are logged, not returned; the tour is still good.
func (s *TourService) export(t *tour.Tour, at time.Time) {
	if s.influx.Enabled() {
		if err := influxdb.ExportTourStops(s.influx, t, at); err != nil {
			s.logger.Error("Failed to export tour to influxdb", "error", err)
		}
	}
	if s.archive != nil {
		entry := struct {
			Generated time.Time `json:"generated"`
			*tour.Tour
		}{at.UTC(), t}
		if err := s.archive.AppendNDJSON(flat.ToursFileName, entry); err != nil {
			s.logger.Error("Failed to archive tour", "error", err)
		}
	}
}
