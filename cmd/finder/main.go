package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/jose-valero/cr-tournament-finder/internal/adapters/clashroyale"
	"github.com/jose-valero/cr-tournament-finder/internal/adapters/httpapi"
	"github.com/jose-valero/cr-tournament-finder/internal/app/bootstrap"
	"github.com/jose-valero/cr-tournament-finder/internal/app/service"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
	"github.com/jose-valero/cr-tournament-finder/internal/infra/config"
)

var version = "dev"

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	app := &cli.App{
		Name:    "cr-finder",
		Usage:   "Busca torneos abiertos de Clash Royale",
		Version: version,
		Commands: []*cli.Command{
			searchCommand(cfg),
			modesCommand(cfg),
			serveCommand(cfg),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.RunContext(ctx, os.Args); err != nil {
		color.Red("❌ %v", err)
		os.Exit(1)
	}
}

func searchCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Corre un ciclo completo y muestra los torneos que pasan los filtros",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Value: domain.FilterAll, Usage: "all | open | password"},
			&cli.StringFlag{Name: "status", Value: domain.FilterAll, Usage: "all | inProgress | inPreparation"},
			&cli.StringSliceFlag{Name: "mode", Aliases: []string{"m"}, Usage: "id de modo de juego (repetible)"},
			&cli.IntSliceFlag{Name: "level", Usage: "level cap (repetible)"},
			&cli.IntFlag{Name: "min-players"},
			&cli.IntFlag{Name: "max-players", Usage: "0 = sin máximo"},
			&cli.IntFlag{Name: "min-remaining", Usage: "minutos"},
			&cli.IntFlag{Name: "max-remaining", Usage: "minutos, 0 = sin máximo"},
			&cli.BoolFlag{Name: "saved", Usage: "usar los filtros guardados del perfil"},
			&cli.IntFlag{Name: "limit", Value: 50, Usage: "filas a mostrar (0 = todas)"},
			&cli.BoolFlag{Name: "json", Usage: "salida JSON"},
		},
		Action: func(c *cli.Context) error {
			logger := bootstrap.NewLogger(cfg, os.Stderr)
			modes, err := bootstrap.Modes(cfg)
			if err != nil {
				return err
			}
			finder := bootstrap.NewFinder(cfg, modes, logger)

			spec, err := specFromFlags(c)
			if err != nil {
				return err
			}
			if c.Bool("saved") {
				filters, closeFn, err := bootstrap.NewFilters(c.Context, cfg)
				if err != nil {
					return err
				}
				defer closeFn()
				if spec, err = filters.Get(c.Context, cfg.FilterProfile); err != nil {
					return err
				}
			}

			rep, err := runWithSpinner(c.Context, "buscando torneos…", func(ctx context.Context) (domain.Report, error) {
				return finder.Run(ctx, spec)
			})
			if errors.Is(err, clashroyale.ErrMissingAPIKey) {
				return fmt.Errorf("%w: exportá CR_API_KEY", err)
			}
			if err != nil {
				return err
			}

			if c.Bool("json") {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			printReport(os.Stdout, rep, c.Int("limit"))
			return nil
		},
	}
}

// specFromFlags pasa por el mismo parser que los query params de la API.
func specFromFlags(c *cli.Context) (domain.FilterSpec, error) {
	v := url.Values{}
	v.Set("tournament_type", c.String("type"))
	v.Set("status", c.String("status"))
	for _, m := range c.StringSlice("mode") {
		v.Add("game_modes", m)
	}
	for _, l := range c.IntSlice("level") {
		v.Add("level_caps", strconv.Itoa(l))
	}
	for flag, param := range map[string]string{
		"min-players":   "min_players",
		"max-players":   "max_players",
		"min-remaining": "min_remaining_minutes",
		"max-remaining": "max_remaining_minutes",
	} {
		if c.IsSet(flag) {
			v.Set(param, strconv.Itoa(c.Int(flag)))
		}
	}
	return service.FilterSpecFromValues(v)
}

func modesCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "modes",
		Usage: "Lista los modos de juego filtrables",
		Action: func(c *cli.Context) error {
			modes, err := bootstrap.Modes(cfg)
			if err != nil {
				return err
			}
			for _, m := range modes.CommonModes() {
				fmt.Printf("%s  %s\n", color.CyanString(m.ID), m.Name)
			}
			return nil
		},
	}
}

func serveCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Levanta la API HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: cfg.HTTPAddr},
		},
		Action: func(c *cli.Context) error {
			logger := bootstrap.NewLogger(cfg, os.Stderr)
			modes, err := bootstrap.Modes(cfg)
			if err != nil {
				return err
			}
			filters, closeFn, err := bootstrap.NewFilters(c.Context, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			srv := httpapi.New(httpapi.Config{
				Password: cfg.Password,
				Profile:  cfg.FilterProfile,
				APIKey:   cfg.CRAPIKey,
			}, bootstrap.NewFinder(cfg, modes, logger), filters, modes)
			srv.Start(c.String("addr"))
			return nil
		},
	}
}
