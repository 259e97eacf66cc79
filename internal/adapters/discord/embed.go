package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

const (
	pageSize    = 10
	colorFound  = 0x2ecc71
	colorEmpty  = 0x95a5a6
	pagePrefix  = "torneos_page"
	maxFieldLen = 1024
)

func pageCount(total int) int {
	if total == 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// renderReport arma el embed de una página de resultados y los botones de navegación.
func renderReport(rep domain.Report, page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	pages := pageCount(len(rep.Tournaments))
	page = max(0, min(page, pages-1))

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 %d torneos (de %d encontrados)", rep.Total, rep.UnfilteredTotal),
		Description: statsLine(rep.Stats),
		Color:       colorFound,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("página %d/%d · run %s", page+1, pages, shortID(rep.RunID))},
	}
	if len(rep.Tournaments) == 0 {
		embed.Color = colorEmpty
		embed.Description += "\n\nNingún torneo cumple los filtros."
		return embed, nil
	}

	from := page * pageSize
	to := min(from+pageSize, len(rep.Tournaments))
	for i, l := range rep.Tournaments[from:to] {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  truncate(fmt.Sprintf("%d. %s (%s)", from+i+1, l.Name, l.Tag), 256),
			Value: truncate(listingLine(l), maxFieldLen),
		})
	}

	if pages == 1 {
		return embed, nil
	}
	row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "⬅️ Anterior",
			Style:    discordgo.SecondaryButton,
			CustomID: pageCustomID(rep.RunID, page-1),
			Disabled: page == 0,
		},
		discordgo.Button{
			Label:    "Siguiente ➡️",
			Style:    discordgo.SecondaryButton,
			CustomID: pageCustomID(rep.RunID, page+1),
			Disabled: page == pages-1,
		},
	}}
	return embed, []discordgo.MessageComponent{row}
}

func listingLine(l domain.Listing) string {
	parts := []string{
		"🎮 " + l.ModeName,
		fmt.Sprintf("👥 %d/%d", l.Capacity, l.MaxCapacity),
	}
	if l.LevelCap > 0 {
		parts = append(parts, fmt.Sprintf("⭐ nivel %d", l.LevelCap))
	}
	if l.Type == domain.TypePasswordProtected {
		parts = append(parts, "🔒")
	}
	switch {
	case l.Remaining == nil:
		parts = append(parts, "⏳ ?")
	case l.Status == domain.StatusInPreparation:
		parts = append(parts, fmt.Sprintf("🕐 en preparación · ~%d min", *l.Remaining))
	default:
		parts = append(parts, fmt.Sprintf("⏳ %d min restantes", *l.Remaining))
	}
	if l.Elapsed != nil {
		parts = append(parts, fmt.Sprintf("hace %d min", *l.Elapsed))
	}
	return strings.Join(parts, " · ")
}

func statsLine(s domain.CrawlStats) string {
	return fmt.Sprintf("🔎 %d búsquedas · %d drill-downs · %d 429 · %d errores · %s",
		s.Queries, s.DrillDowns, s.RateLimits, s.APIErrors, s.Elapsed.Round(100*time.Millisecond))
}

func pageCustomID(runID string, page int) string {
	return pagePrefix + ":" + runID + ":" + strconv.Itoa(page)
}

func parsePageCustomID(id string) (runID string, page int, ok bool) {
	parts := strings.Split(id, ":")
	if len(parts) != 3 || parts[0] != pagePrefix {
		return "", 0, false
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n < 0 {
		return "", 0, false
	}
	return parts[1], n, true
}

func modesMessage(modes Modes) string {
	var b strings.Builder
	b.WriteString("**Modos de juego**\n")
	for _, m := range modes.CommonModes() {
		fmt.Fprintf(&b, "• %s (`%s`)\n", m.Name, m.ID)
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
