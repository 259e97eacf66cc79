package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jose-valero/cr-tournament-finder/internal/app/service"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

// Lo implementa service.FinderService
type Finder interface {
	Run(ctx context.Context, spec domain.FilterSpec) (domain.Report, error)
	Configured() bool
}

// Lo implementa service.FilterService
type Filters interface {
	Get(ctx context.Context, profileID string) (domain.FilterSpec, error)
	Update(ctx context.Context, profileID string, patch service.FilterPatch) (domain.FilterSpec, error)
}

// Lo implementa gamemodes.Catalog
type Modes interface {
	Common() map[string]string
}

type Config struct {
	Password string // vacío = sin login
	Profile  string // perfil de filtros que usa la web
	APIKey   string // solo para mostrarla enmascarada
}

type Server struct {
	cfg     Config
	finder  Finder
	filters Filters
	modes   Modes
	router  *mux.Router
}

func New(cfg Config, finder Finder, filters Filters, modes Modes) *Server {
	if cfg.Profile == "" {
		cfg.Profile = "default"
	}
	s := &Server{cfg: cfg, finder: finder, filters: filters, modes: modes, router: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(logRequests)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.requirePassword)
	api.HandleFunc("/tournaments", s.handleTournaments).Methods(http.MethodGet)
	api.HandleFunc("/game-modes", s.handleGameModes).Methods(http.MethodGet)
	api.HandleFunc("/config", s.handleGetConfig).Methods(http.MethodGet)
	api.HandleFunc("/config", s.handleSaveConfig).Methods(http.MethodPost)
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Start(addr string) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("🌐 HTTP listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
