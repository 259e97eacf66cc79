package discord

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	// un ciclo completo tarda decenas de segundos
	searchTimeout  = 90 * time.Second
	searchCooldown = 30 * time.Second
	reportTTL      = 15 * time.Minute
)

type Config struct {
	GuildID      string
	Profile      string   // perfil de filtros guardados
	AdminRoleIDs []string // además de owner y Administrator
}

type Router struct {
	s   *discordgo.Session
	cfg Config

	finder  Finder
	filters Filters
	modes   Modes

	searchLimiter *userLimiter
	clickLimiter  *userLimiter
	reports       *reportCache
}

func NewRouter(s *discordgo.Session, cfg Config, finder Finder, filters Filters, modes Modes) *Router {
	if cfg.Profile == "" {
		cfg.Profile = "default"
	}
	return &Router{
		s:             s,
		cfg:           cfg,
		finder:        finder,
		filters:       filters,
		modes:         modes,
		searchLimiter: newUserLimiter(searchCooldown),
		clickLimiter:  newUserLimiter(time.Second),
		reports:       newReportCache(reportTTL),
	}
}

func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands(r.modes.CommonModes()) {
		if _, err := r.s.ApplicationCommandCreate(appID, r.cfg.GuildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		switch ic.Type {
		case discordgo.InteractionApplicationCommand:
			r.handleSlashCommand(s, ic)
		case discordgo.InteractionMessageComponent:
			r.handleMessageComponent(s, ic)
		default:
			log.Printf("interaction ignorada type=%v", ic.Type)
		}
	})
}
