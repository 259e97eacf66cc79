package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jose-valero/cr-tournament-finder/internal/adapters/clashroyale"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

type FinderConfig struct {
	CrawlWorkers  int
	DetailWorkers int
}

// FinderService corre un ciclo completo: crawl, filtro estructural, detalles, filtro temporal.
type FinderService struct {
	api      TournamentAPI
	modes    ModeNamer
	log      *slog.Logger
	crawler  *Crawler
	enricher *Enricher
	now      func() time.Time
}

func NewFinderService(api TournamentAPI, modes ModeNamer, log *slog.Logger, cfg FinderConfig, opts ...CrawlerOption) *FinderService {
	if log == nil {
		log = slog.Default()
	}
	opts = append([]CrawlerOption{WithCrawlWorkers(cfg.CrawlWorkers)}, opts...)
	return &FinderService{
		api:      api,
		modes:    modes,
		log:      log,
		crawler:  NewCrawler(api, log, opts...),
		enricher: NewEnricher(api, log, cfg.DetailWorkers),
		now:      time.Now,
	}
}

// Run es la única operación que consume la capa de presentación.
// Sin API key falla antes de tocar la red; cualquier otro problema remoto solo reduce cobertura.
func (s *FinderService) Run(ctx context.Context, spec domain.FilterSpec) (domain.Report, error) {
	if !s.api.Configured() {
		return domain.Report{}, clashroyale.ErrMissingAPIKey
	}

	runID := uuid.NewString()
	log := s.log.With("run", runID)
	log.Info("new search",
		"type", spec.Type, "status", spec.Status,
		"game_modes", spec.GameModes, "level_caps", spec.LevelCaps,
		"min_players", spec.MinPlayers, "max_players", spec.MaxPlayers,
		"min_remaining", spec.MinRemaining, "max_remaining", spec.MaxRemaining,
	)

	crawl, err := s.crawler.Crawl(ctx)
	if err != nil {
		return domain.Report{}, err
	}

	candidates := StructuralFilter(crawl.Tournaments, spec)
	log.Info("after structural filters", "tournaments", len(candidates))

	candidates = s.enricher.Enrich(ctx, candidates)

	listings := TemporalFilter(candidates, spec, s.now(), s.modes)
	log.Info("after time filters", "tournaments", len(listings))
	for _, l := range listings {
		log.Debug("match", "tag", l.Tag, "name", l.Name, "mode", l.ModeName,
			"players", l.Capacity, "max_players", l.MaxCapacity)
	}

	return domain.Report{
		RunID:           runID,
		Tournaments:     listings,
		Total:           len(listings),
		UnfilteredTotal: len(crawl.Tournaments),
		Stats:           crawl.Stats,
	}, nil
}

// Configured expone si hay credencial, para las vistas de configuración.
func (s *FinderService) Configured() bool { return s.api.Configured() }

// MaskAPIKey: primeros 10 + "..." + últimos 6; claves cortas no se muestran.
func MaskAPIKey(key string) string {
	if len(key) <= 20 {
		return ""
	}
	return key[:10] + "..." + key[len(key)-6:]
}
