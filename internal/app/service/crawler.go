package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jose-valero/cr-tournament-finder/internal/adapters/clashroyale"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

const (
	DefaultCrawlWorkers = 40
	DefaultPageCap      = 20 // tope real de la API hoy; si cambia, revisar el disparador del drill-down
	DefaultMaxQueryLen  = 4
)

type CrawlResult struct {
	Tournaments []domain.Tournament
	Stats       domain.CrawlStats
}

type CrawlerOption func(*Crawler)

func WithCrawlWorkers(n int) CrawlerOption {
	return func(c *Crawler) {
		if n > 0 {
			c.workers = n
		}
	}
}
func WithSeeds(seeds []string) CrawlerOption {
	return func(c *Crawler) { c.seeds = seeds }
}
func WithPageCap(n int) CrawlerOption {
	return func(c *Crawler) { c.pageCap = n }
}
func WithMaxQueryLen(n int) CrawlerOption {
	return func(c *Crawler) { c.maxQueryLen = n }
}

// Crawler descubre torneos refinando queries por substring hasta que la página deja de venir llena.
type Crawler struct {
	search      TournamentSearcher
	log         *slog.Logger
	workers     int
	pageCap     int
	maxQueryLen int
	seeds       []string
}

func NewCrawler(search TournamentSearcher, log *slog.Logger, opts ...CrawlerOption) *Crawler {
	if log == nil {
		log = slog.Default()
	}
	c := &Crawler{
		search:      search,
		log:         log,
		workers:     DefaultCrawlWorkers,
		pageCap:     DefaultPageCap,
		maxQueryLen: DefaultMaxQueryLen,
		seeds:       SeedQueries(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type queryOutcome struct {
	query string
	page  domain.SearchPage
	err   error
}

// Crawl procesa el frontier por rondas; la ronda N+1 se arma recién cuando termina la N.
// Solo devuelve error si se cancela ctx.
func (c *Crawler) Crawl(ctx context.Context) (CrawlResult, error) {
	start := time.Now()
	stats := domain.CrawlStats{ByMode: map[string]int{}}
	all := map[string]domain.Tournament{}
	f := newFrontier(c.seeds)

	for {
		if err := ctx.Err(); err != nil {
			return CrawlResult{}, err
		}
		batch := f.next()
		if len(batch) == 0 {
			break
		}
		stats.Rounds++

		outcomes := c.runBatch(ctx, batch)

		// merge en un solo goroutine: all y stats no se comparten con los workers
		for _, o := range outcomes {
			stats.RateLimits += o.page.RateLimitHits
			switch {
			case o.err == nil:
				stats.Queries++
			case errors.Is(o.err, clashroyale.ErrRateLimited):
				c.log.Debug("query rate limited", "query", o.query)
			case ctx.Err() != nil:
				// se canceló el crawl; lo corta el chequeo al inicio de la próxima ronda.
				// un timeout propio de la llamada con ctx vivo cae en default
			default:
				stats.APIErrors++
				c.log.Debug("query failed", "query", o.query, "err", o.err)
			}

			for _, t := range o.page.Items {
				all[t.Tag] = t
			}

			if c.shouldExpand(o.query, len(o.page.Items)) {
				stats.DrillDowns++
				for _, child := range ChildQueries(o.query) {
					f.push(child)
				}
			}
		}
		c.log.Debug("crawl round done", "round", stats.Rounds, "queries", len(batch), "found", len(all))
	}

	out := make([]domain.Tournament, 0, len(all))
	for _, t := range all {
		mode := t.GameModeID
		if mode == "" {
			mode = "unknown"
		}
		stats.ByMode[mode]++
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	stats.Elapsed = time.Since(start)

	c.log.Info("crawl completed",
		"elapsed", stats.Elapsed.Round(100*time.Millisecond),
		"rounds", stats.Rounds,
		"queries", stats.Queries,
		"drill_downs", stats.DrillDowns,
		"rate_limits", stats.RateLimits,
		"api_errors", stats.APIErrors,
		"tournaments", len(out),
	)
	return CrawlResult{Tournaments: out, Stats: stats}, nil
}

// shouldExpand: página llena y todavía hay profundidad.
func (c *Crawler) shouldExpand(query string, n int) bool {
	return n >= c.pageCap && len(query) < c.maxQueryLen
}

// runBatch corre una ronda completa con a lo sumo c.workers llamadas en vuelo.
// Cada worker escribe solo su índice.
func (c *Crawler) runBatch(ctx context.Context, batch []string) []queryOutcome {
	out := make([]queryOutcome, len(batch))
	var g errgroup.Group
	g.SetLimit(c.workers)
	for i, q := range batch {
		i, q := i, q
		g.Go(func() error {
			page, err := c.search.SearchTournaments(ctx, q)
			out[i] = queryOutcome{query: q, page: page, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
