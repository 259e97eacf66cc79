// Package bootstrap arma los servicios a partir de la config; lo comparten cmd/finder, cmd/bot y cmd/lambda.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/jose-valero/cr-tournament-finder/internal/adapters/clashroyale"
	"github.com/jose-valero/cr-tournament-finder/internal/app/service"
	"github.com/jose-valero/cr-tournament-finder/internal/infra/config"
	"github.com/jose-valero/cr-tournament-finder/internal/infra/gamemodes"
	"github.com/jose-valero/cr-tournament-finder/internal/infra/storage"
)

func NewLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func Modes(cfg config.Config) (*gamemodes.Catalog, error) {
	if cfg.GameModesFile == "" {
		return gamemodes.Default(), nil
	}
	c, err := gamemodes.Load(cfg.GameModesFile)
	if err != nil {
		return nil, fmt.Errorf("game modes %s: %w", cfg.GameModesFile, err)
	}
	return c, nil
}

func NewFinder(cfg config.Config, modes *gamemodes.Catalog, logger *slog.Logger) *service.FinderService {
	var opts []clashroyale.Option
	if cfg.CRAPIBase != "" {
		opts = append(opts, clashroyale.WithBaseURL(strings.TrimRight(cfg.CRAPIBase, "/")))
	}
	api := clashroyale.New(cfg.CRAPIKey, opts...)
	if !api.Configured() {
		log.Println("⚠️ CR_API_KEY vacía: las búsquedas van a fallar")
	}
	return service.NewFinderService(api, modes, logger, service.FinderConfig{
		CrawlWorkers:  cfg.CrawlWorkers,
		DetailWorkers: cfg.DetailWorkers,
	})
}

// NewFilters usa Postgres si hay DATABASE_URL; si no, memoria. El close siempre es no-nil.
func NewFilters(ctx context.Context, cfg config.Config) (*service.FilterService, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Println("ℹ️ sin DATABASE_URL: filtros guardados en memoria")
		return service.NewFilterService(storage.NewMemoryFilterRepo()), func() {}, nil
	}
	db, err := storage.Open(ctx, cfg.DatabaseURL, storage.WithMaxConns(cfg.DBMaxConns))
	if err != nil {
		return nil, nil, err
	}
	if err := storage.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	log.Println("✅ DB lista y migrada")
	return service.NewFilterService(storage.NewFilterRepo(db)), func() { _ = db.Close() }, nil
}
