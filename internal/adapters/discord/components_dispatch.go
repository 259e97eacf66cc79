package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

func (r *Router) handleMessageComponent(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()

	runID, page, ok := parsePageCustomID(data.CustomID)
	if !ok {
		log.Printf("component desconocido: %s", data.CustomID)
		return
	}
	if ok, _ := r.clickLimiter.Allow(userID(ic)); !ok {
		_ = DeferEphemeral(s, ic)
		ReplyEphemeral(s, ic, "⏳ Esperá un segundo…")
		return
	}

	rep, found := r.reports.get(runID)
	if !found {
		_ = DeferEphemeral(s, ic)
		ReplyEphemeral(s, ic, "ℹ️ Esta búsqueda expiró, corré `/torneos` de nuevo.")
		return
	}
	embed, comps := renderReport(rep, page)
	UpdateMessage(s, ic, embed, comps)
}
