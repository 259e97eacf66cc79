package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

const DefaultDetailWorkers = 40

// Enricher completa startedTime/endedTime desde el endpoint de detalle.
type Enricher struct {
	detail  TournamentDetailer
	log     *slog.Logger
	workers int
}

func NewEnricher(detail TournamentDetailer, log *slog.Logger, workers int) *Enricher {
	if log == nil {
		log = slog.Default()
	}
	if workers <= 0 {
		workers = DefaultDetailWorkers
	}
	return &Enricher{detail: detail, log: log, workers: workers}
}

// Enrich devuelve una copia en el mismo orden. Si el detalle falla el candidato queda como estaba.
func (e *Enricher) Enrich(ctx context.Context, candidates []domain.Tournament) []domain.Tournament {
	out := make([]domain.Tournament, len(candidates))
	copy(out, candidates)
	if len(out) == 0 {
		return out
	}

	failed := make([]bool, len(out))
	var g errgroup.Group
	g.SetLimit(min(e.workers, len(out)))
	for i := range out {
		i := i
		g.Go(func() error {
			d, err := e.detail.GetTournament(ctx, out[i].Tag)
			if err != nil {
				failed[i] = true
				e.log.Debug("detail lookup failed", "tag", out[i].Tag, "err", err)
				return nil
			}
			if d.StartedTime != "" {
				out[i].StartedTime = d.StartedTime
			}
			if d.EndedTime != "" {
				out[i].EndedTime = d.EndedTime
			}
			return nil
		})
	}
	_ = g.Wait()

	n := 0
	for _, f := range failed {
		if f {
			n++
		}
	}
	e.log.Info("details fetched", "candidates", len(out), "failed", n)
	return out
}
