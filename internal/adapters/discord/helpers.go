package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/cr-tournament-finder/internal/app/service"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

type options []*discordgo.ApplicationCommandInteractionDataOption

// commandOptions devuelve las opciones del comando o, si hay subcomando, las del subcomando.
func commandOptions(ic *discordgo.InteractionCreate) (string, options) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return "", nil
	}
	opts := ic.ApplicationCommandData().Options
	for _, o := range opts {
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			return o.Name, o.Options
		}
	}
	return "", opts
}

func (opts options) stringOpt(name string) (string, bool) {
	for _, o := range opts {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue(), true
		}
	}
	return "", false
}

func (opts options) intOpt(name string) (int, bool) {
	for _, o := range opts {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionInteger {
			return int(o.IntValue()), true
		}
	}
	return 0, false
}

// specFromOptions arma el FilterSpec de /torneos. Un max en 0 es "sin máximo".
func specFromOptions(opts options) domain.FilterSpec {
	spec := domain.FilterSpec{Type: domain.FilterAll, Status: domain.FilterAll}
	if v, ok := opts.stringOpt("tipo"); ok {
		spec.Type = v
	}
	if v, ok := opts.stringOpt("estado"); ok {
		spec.Status = v
	}
	if v, ok := opts.stringOpt("modo"); ok && v != domain.FilterAll {
		spec.GameModes = []string{v}
	}
	if v, ok := opts.intOpt("nivel"); ok && v > 0 {
		spec.LevelCaps = []int{v}
	}
	if v, ok := opts.intOpt("min_jugadores"); ok {
		spec.MinPlayers = domain.IntPtr(v)
	}
	if v, ok := opts.intOpt("max_jugadores"); ok && v > 0 {
		spec.MaxPlayers = domain.IntPtr(v)
	}
	if v, ok := opts.intOpt("min_restante"); ok {
		spec.MinRemaining = domain.IntPtr(v)
	}
	if v, ok := opts.intOpt("max_restante"); ok && v > 0 {
		spec.MaxRemaining = domain.IntPtr(v)
	}
	return spec
}

// patchFromOptions: igual que specFromOptions pero solo con lo que vino; max en 0 borra el máximo.
func patchFromOptions(opts options) service.FilterPatch {
	var p service.FilterPatch
	if v, ok := opts.stringOpt("tipo"); ok {
		p.Type = &v
	}
	if v, ok := opts.stringOpt("estado"); ok {
		p.Status = &v
	}
	if v, ok := opts.stringOpt("modo"); ok {
		modes := []string{v}
		if v == domain.FilterAll {
			modes = nil
		}
		p.GameModes = &modes
	}
	if v, ok := opts.intOpt("nivel"); ok {
		caps := []int{v}
		if v == 0 {
			caps = nil
		}
		p.LevelCaps = &caps
	}
	if v, ok := opts.intOpt("min_jugadores"); ok {
		p.MinPlayers = &v
	}
	if v, ok := opts.intOpt("max_jugadores"); ok {
		if v == 0 {
			p.ClearMaxPlayers = true
		} else {
			p.MaxPlayers = &v
		}
	}
	if v, ok := opts.intOpt("min_restante"); ok {
		p.MinRemaining = &v
	}
	if v, ok := opts.intOpt("max_restante"); ok {
		if v == 0 {
			p.ClearMaxRemaining = true
		} else {
			p.MaxRemaining = &v
		}
	}
	return p
}

func userID(ic *discordgo.InteractionCreate) string {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User.ID
	}
	if ic.User != nil {
		return ic.User.ID
	}
	return ""
}
