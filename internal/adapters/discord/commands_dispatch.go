// lógica de InteractionApplicationCommand: valida, arma el filtro y despacha a los servicios
package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/cr-tournament-finder/internal/adapters/clashroyale"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

func (r *Router) handleSlashCommand(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	uid := userID(ic)
	log.Printf("cmd: /%s by=%s guild=%s", cmd.Name, uid, ic.GuildID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in cmd /%s: %v", cmd.Name, rec)
			ReplyEphemeral(s, ic, "❌ Ocurrió un error inesperado procesando el comando.")
		}
	}()

	_ = DeferEphemeral(s, ic)

	switch cmd.Name {
	case "ping":
		ReplyEphemeral(s, ic, "🏓 Pong!")

	case "modos":
		ReplyEphemeral(s, ic, modesMessage(r.modes))

	case "torneos":
		r.searchTournaments(s, ic, uid)

	case "filtros":
		if !r.requireAdminOrRoles(s, ic) {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		sub, opts := commandOptions(ic)
		if sub == "set" {
			if _, err := r.filters.Update(ctx, r.cfg.Profile, patchFromOptions(opts)); err != nil {
				ReplyEphemeral(s, ic, "⚠️ No pude actualizar: "+err.Error())
				return
			}
		}
		msg, err := r.filters.Show(ctx, r.cfg.Profile)
		if err != nil {
			ReplyEphemeral(s, ic, "⚠️ No pude leer los filtros: "+err.Error())
			return
		}
		if sub == "set" {
			msg = "✅ Filtros actualizados.\n" + msg
		}
		ReplyEphemeral(s, ic, msg)
	}
}

func (r *Router) searchTournaments(s *discordgo.Session, ic *discordgo.InteractionCreate, uid string) {
	defer step("cmd.torneos.total")()

	if !r.finder.Configured() {
		ReplyEphemeral(s, ic, "🔑 Falta configurar la API key de Clash Royale (`CR_API_KEY`).")
		return
	}
	if ok, wait := r.searchLimiter.Allow(uid); !ok {
		ReplyEphemeral(s, ic, fmt.Sprintf("⏳ Esperá %ds antes de otra búsqueda.", int(wait.Seconds())+1))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	_, opts := commandOptions(ic)
	var spec domain.FilterSpec
	if len(opts) == 0 {
		saved, err := r.filters.Get(ctx, r.cfg.Profile)
		if err != nil {
			r.searchLimiter.Release(uid)
			ReplyEphemeral(s, ic, "⚠️ No pude leer los filtros guardados: "+err.Error())
			return
		}
		spec = saved
	} else {
		spec = specFromOptions(opts)
	}

	rep, err := r.finder.Run(ctx, spec)
	switch {
	case errors.Is(err, clashroyale.ErrMissingAPIKey):
		r.searchLimiter.Release(uid)
		ReplyEphemeral(s, ic, "🔑 Falta configurar la API key de Clash Royale (`CR_API_KEY`).")
		return
	case errors.Is(err, context.DeadlineExceeded):
		ReplyEphemeral(s, ic, "⌛ La búsqueda tardó demasiado, probá con menos filtros o más tarde.")
		return
	case err != nil:
		log.Printf("❌ torneos: %v", err)
		ReplyEphemeral(s, ic, "⚠️ Falló la búsqueda: "+err.Error())
		return
	}

	r.reports.put(rep)
	embed, comps := renderReport(rep, 0)
	ReplyWithComponents(s, ic, "", []*discordgo.MessageEmbed{embed}, comps)
}
