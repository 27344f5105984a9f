package webd

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/rotblauer/pintour/api"
	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/events"
	"github.com/rotblauer/pintour/geo/region"
	"github.com/rotblauer/pintour/params"
	"github.com/rotblauer/pintour/stream"
	"github.com/rotblauer/pintour/types/location"
)

// maxBodyBytes bounds POSTed pins.
const maxBodyBytes = 8 << 20

func pingPong(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

func (s *WebDaemon) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to write response", "error", err)
	}
}

type webDaemonStatus struct {
	StartedAt   time.Time             `json:"started_at"`
	Uptime      string                `json:"uptime"`
	Locations   int                   `json:"locations"`
	RecentTours []api.TourSummary     `json:"recent_tours"`
	Tour        *params.TourConfig    `json:"tour_config"`
	Listener    params.ListenerConfig `json:"listener"`
	WSOpen      bool                  `json:"ws_open"`
	WSConns     int                   `json:"ws_conns"`
}

func (s *WebDaemon) statusReport(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.Count()
	if err != nil {
		s.logger.Error("Failed to count locations", "error", err)
		http.Error(w, "Failed to count locations", http.StatusInternalServerError)
		return
	}
	st := webDaemonStatus{
		StartedAt:   s.started,
		Uptime:      time.Since(s.started).Round(time.Second).String(),
		Locations:   n,
		RecentTours: s.tours.Recent(),
		Tour:        s.Config.Tour,
		Listener:    s.Config.ListenerConfig,
		WSOpen:      !s.melodyInstance.IsClosed(),
		WSConns:     s.melodyInstance.Len(),
	}
	s.writeJSON(w, st)
}

type regionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`

	// DistanceKm is the great-circle distance to the tour reference point.
	DistanceKm float64 `json:"distanceKm"`
}

func parseCoordinate(r *http.Request, key string, limit float64) (float64, bool) {
	v, err := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	if err != nil || v < -limit || v > limit {
		return 0, false
	}
	return v, true
}

// handleRegion classifies ?lat=&lng=.
func (s *WebDaemon) handleRegion(w http.ResponseWriter, r *http.Request) {
	lat, ok := parseCoordinate(r, "lat", 90)
	if !ok {
		http.Error(w, "Invalid or missing lat", http.StatusBadRequest)
		return
	}
	lng, ok := parseCoordinate(r, "lng", 180)
	if !ok {
		http.Error(w, "Invalid or missing lng", http.StatusBadRequest)
		return
	}
	config := s.tours.Config()
	ref := orb.Point{config.ReferenceLng, config.ReferenceLat}
	res := regionResponse{
		Latitude:   lat,
		Longitude:  lng,
		Code:       region.Code(lat, lng),
		Name:       region.Name(lat, lng),
		DistanceKm: common.DecimalToFixed(common.PointDistanceKm(orb.Point{lng, lat}, ref), common.GPSPrecision3),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

// handleGetTour builds (or reuses) a tour from the stored history.
func (s *WebDaemon) handleGetTour(w http.ResponseWriter, r *http.Request) {
	t, err := s.tours.Generate(r.Context())
	if err != nil {
		s.logger.Error("Failed to generate tour", "error", err)
		http.Error(w, "Failed to generate tour", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, t)
}

// handleTourGeoJSON is handleGetTour as a FeatureCollection.
func (s *WebDaemon) handleTourGeoJSON(w http.ResponseWriter, r *http.Request) {
	t, err := s.tours.Generate(r.Context())
	if err != nil {
		s.logger.Error("Failed to generate tour", "error", err)
		http.Error(w, "Failed to generate tour", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	if err := json.NewEncoder(w).Encode(t.FeatureCollection()); err != nil {
		s.logger.Warn("Failed to write response", "error", err)
	}
}

func (s *WebDaemon) readRecords(w http.ResponseWriter, r *http.Request) ([]location.Record, bool) {
	if r.Body == nil {
		http.Error(w, "Please send a request body", http.StatusBadRequest)
		return nil, false
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.logger.Warn("Failed to read request body", "error", err)
		http.Error(w, "Failed to read request body", http.StatusRequestEntityTooLarge)
		return nil, false
	}
	records, err := location.DecodeRecords(body)
	if err != nil {
		s.logger.Warn("Failed to decode pins", "error", err)
		http.Error(w, "Failed to decode pins", http.StatusBadRequest)
		return nil, false
	}
	return records, true
}

// handlePostTour builds a tour from the posted pins, without storing them.
func (s *WebDaemon) handlePostTour(w http.ResponseWriter, r *http.Request) {
	records, ok := s.readRecords(w, r)
	if !ok {
		return
	}
	t, err := s.tours.GenerateFrom(r.Context(), records)
	if err != nil {
		s.logger.Error("Failed to generate tour", "error", err)
		http.Error(w, "Failed to generate tour", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, t)
}

type populateResponse struct {
	Received int `json:"received"`
	Stored   int `json:"stored"`
}

// handlePopulate stores posted pins: a JSON array, a GeoJSON FeatureCollection, or NDJSON.
func (s *WebDaemon) handlePopulate(w http.ResponseWriter, r *http.Request) {
	records, ok := s.readRecords(w, r)
	if !ok {
		return
	}
	events.HTTPPopulateFeed.Send(records)

	ctx := r.Context()
	stored, err := api.Populate(ctx, s.store, stream.Slice(ctx, records))
	if err != nil {
		s.logger.Error("Failed to populate", "error", err)
		http.Error(w, "Failed to populate", http.StatusInternalServerError)
		return
	}
	s.logger.Info("Populated", "received", len(records), "stored", stored)
	s.writeJSON(w, populateResponse{Received: len(records), Stored: stored})
}

