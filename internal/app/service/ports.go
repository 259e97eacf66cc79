package service

import (
	"context"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

// Lo implementa internal/adapters/clashroyale.Client
type TournamentSearcher interface {
	SearchTournaments(ctx context.Context, name string) (domain.SearchPage, error)
}

type TournamentDetailer interface {
	GetTournament(ctx context.Context, tag string) (*domain.Tournament, error)
}

type TournamentAPI interface {
	TournamentSearcher
	TournamentDetailer
	Configured() bool
}

// Lo implementa internal/infra/gamemodes.Catalog
type ModeNamer interface {
	Name(id string) string
}

// Lo implementan storage.FilterRepo y storage.MemoryFilterRepo
type FilterRepo interface {
	Get(ctx context.Context, profileID string) (domain.FilterSpec, error)
	Upsert(ctx context.Context, profileID string, spec domain.FilterSpec) error
}
