package discord

import (
	"context"

	"github.com/jose-valero/cr-tournament-finder/internal/app/service"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
	"github.com/jose-valero/cr-tournament-finder/internal/infra/gamemodes"
)

// Lo implementa service.FinderService
type Finder interface {
	Run(ctx context.Context, spec domain.FilterSpec) (domain.Report, error)
	Configured() bool
}

// Lo implementa service.FilterService
type Filters interface {
	Get(ctx context.Context, profileID string) (domain.FilterSpec, error)
	Show(ctx context.Context, profileID string) (string, error)
	Update(ctx context.Context, profileID string, patch service.FilterPatch) (domain.FilterSpec, error)
}

// Lo implementa gamemodes.Catalog
type Modes interface {
	CommonModes() []gamemodes.Mode
}
