package discord

import (
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
	"github.com/jose-valero/cr-tournament-finder/internal/infra/gamemodes"
)

func reportWith(n int) domain.Report {
	rep := domain.Report{RunID: "0123456789abcdef", Total: n, UnfilteredTotal: 100}
	for i := 0; i < n; i++ {
		rep.Tournaments = append(rep.Tournaments, domain.Listing{
			Tournament: domain.Tournament{
				Tag: fmt.Sprintf("#T%02d", i), Name: fmt.Sprintf("t%d", i),
				Status: domain.StatusInProgress, Capacity: 10, MaxCapacity: 50, LevelCap: 11,
			},
			ModeName:  "Normal",
			Remaining: domain.IntPtr(30 + i),
		})
	}
	return rep
}

func TestRenderReport_Empty(t *testing.T) {
	embed, comps := renderReport(reportWith(0), 0)
	assert.Contains(t, embed.Description, "Ningún torneo")
	assert.Empty(t, embed.Fields)
	assert.Nil(t, comps)
	assert.Contains(t, embed.Footer.Text, "página 1/1")
}

func TestRenderReport_SinglePageHasNoButtons(t *testing.T) {
	embed, comps := renderReport(reportWith(3), 0)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "1. t0 (#T00)", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "👥 10/50")
	assert.Contains(t, embed.Fields[0].Value, "⏳ 30 min restantes")
	assert.Nil(t, comps)
}

func TestRenderReport_Pagination(t *testing.T) {
	rep := reportWith(23)

	embed, comps := renderReport(rep, 2)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "21. t20 (#T20)", embed.Fields[0].Name)
	assert.Contains(t, embed.Footer.Text, "página 3/3")
	assert.Contains(t, embed.Footer.Text, "run 01234567")

	require.Len(t, comps, 1)
	row := comps[0].(discordgo.ActionsRow)
	prev := row.Components[0].(discordgo.Button)
	next := row.Components[1].(discordgo.Button)
	assert.False(t, prev.Disabled)
	assert.True(t, next.Disabled)
	assert.Equal(t, pageCustomID(rep.RunID, 1), prev.CustomID)

	// páginas fuera de rango se acotan
	embed, _ = renderReport(rep, 99)
	assert.Contains(t, embed.Footer.Text, "página 3/3")
}

func TestListingLine_UnknownAndPreparation(t *testing.T) {
	l := domain.Listing{Tournament: domain.Tournament{Type: domain.TypePasswordProtected}, ModeName: "Draft"}
	assert.Contains(t, listingLine(l), "⏳ ?")
	assert.Contains(t, listingLine(l), "🔒")

	l.Status = domain.StatusInPreparation
	l.Remaining = domain.IntPtr(50)
	assert.Contains(t, listingLine(l), "en preparación · ~50 min")
}

func TestPageCustomIDRoundTrip(t *testing.T) {
	run, page, ok := parsePageCustomID(pageCustomID("abc", 4))
	require.True(t, ok)
	assert.Equal(t, "abc", run)
	assert.Equal(t, 4, page)

	_, _, ok = parsePageCustomID("queue_join")
	assert.False(t, ok)
	_, _, ok = parsePageCustomID(pagePrefix + ":abc:-1")
	assert.False(t, ok)
}

func TestCommandsUseCatalogChoices(t *testing.T) {
	cmds := Commands(gamemodes.Default().CommonModes())
	var torneos *discordgo.ApplicationCommand
	for _, c := range cmds {
		if c.Name == "torneos" {
			torneos = c
		}
	}
	require.NotNil(t, torneos)
	require.Equal(t, "modo", torneos.Options[0].Name)
	assert.Len(t, torneos.Options[0].Choices, 8)
	assert.Contains(t, modesMessage(gamemodes.Default()), "Triple Draft")
}
