package webd

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/olahol/melody"
	"github.com/rotblauer/pintour/api"
	"github.com/rotblauer/pintour/locdb"
	"github.com/rotblauer/pintour/params"
	"github.com/rotblauer/pintour/rgeo"
)

type WebDaemon struct {
	Config         *params.WebDaemonConfig
	started        time.Time
	logger         *slog.Logger
	melodyInstance *melody.Melody
	store          *locdb.Store
	tours          *api.TourService
}

// NewWebDaemon opens the location store in config.DataDir
// and wires a tour service over it.
// Stops are enriched with countries only if rgeo has been initialized.
func NewWebDaemon(config *params.WebDaemonConfig) (*WebDaemon, error) {
	if config == nil {
		config = params.DefaultWebDaemonConfig()
	}
	if config.Tour == nil {
		config.Tour = params.DefaultTourConfig()
	}
	logger := slog.With("d", "web")

	store, err := locdb.Open(config.DataDir, false)
	if err != nil {
		return nil, err
	}

	opts := []api.Option{api.WithArchive(store.Flat)}
	if config.Influx.Enabled() {
		opts = append(opts, api.WithInflux(config.Influx))
	}
	if rg := rgeo.R(); rg != nil {
		namer, err := rgeo.NewCachedGeocoder(rg, params.CacheRgeoSize)
		if err != nil {
			store.Close()
			return nil, err
		}
		opts = append(opts, api.WithCountryNamer(namer))
	} else {
		logger.Info("Reverse geocoding disabled")
	}

	return &WebDaemon{
		Config:  config,
		started: time.Now(),
		logger:  logger,
		store:   store,
		tours:   api.NewTourService(config.Tour, store, opts...),
	}, nil
}

// Run serves HTTP until ctx is done, then shuts down gracefully
// and closes the store.
func (s *WebDaemon) Run(ctx context.Context) error {
	router := s.NewRouter()
	ln, err := net.Listen(s.Config.Network, s.Config.Address)
	if err != nil {
		return err
	}
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info("Starting web daemon", "network", s.Config.Network, "address", ln.Addr().String())
		errs <- server.Serve(ln)
	}()

	select {
	case err = <-errs:
	case <-ctx.Done():
		s.logger.Info("Shutting down web daemon")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = server.Shutdown(shutdownCtx)
	}
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	if cerr := s.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Close disconnects websocket clients, stops the tour service, and closes the store.
func (s *WebDaemon) Close() error {
	if s.melodyInstance != nil && !s.melodyInstance.IsClosed() {
		_ = s.melodyInstance.Close()
	}
	s.tours.Close()
	return s.store.Close()
}

func (s *WebDaemon) NewRouter() *mux.Router {
	s.initMelody()

	router := mux.NewRouter().StrictSlash(false)
	router.Use(loggingMiddleware)

	// Websocket.
	router.Path("/socket").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = s.melodyInstance.HandleRequest(w, r)
	})

	apiRoutes := router.NewRoute().Subrouter()

	// All API routes use permissive CORS settings.
	apiRoutes.Use(permissiveCorsMiddleware)

	// /ping is a simple server healthcheck endpoint
	apiRoutes.Path("/ping").HandlerFunc(pingPong)

	apiRoutes.Path("/tour.geojson").HandlerFunc(s.handleTourGeoJSON).Methods(http.MethodGet)

	apiJSONRoutes := apiRoutes.NewRoute().Subrouter()
	apiJSONRoutes.Use(contentTypeMiddlewareFunc("application/json"))

	apiJSONRoutes.Path("/status").HandlerFunc(s.statusReport).Methods(http.MethodGet)
	apiJSONRoutes.Path("/region").HandlerFunc(s.handleRegion).Methods(http.MethodGet)
	apiJSONRoutes.Path("/tour").HandlerFunc(s.handleGetTour).Methods(http.MethodGet)
	apiJSONRoutes.Path("/tour").HandlerFunc(s.handlePostTour).Methods(http.MethodPost)

	authenticatedAPIRoutes := apiJSONRoutes.NewRoute().Subrouter()
	authenticatedAPIRoutes.Use(s.tokenAuthenticationMiddleware)

	authenticatedAPIRoutes.Path("/populate").HandlerFunc(s.handlePopulate).Methods(http.MethodPost)

	return router
}
