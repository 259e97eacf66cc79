package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
	"github.com/jose-valero/cr-tournament-finder/internal/infra/gamemodes"
)

// máximo de choices que acepta Discord por opción
const maxChoices = 25

var zero = 0.0

// filterOptions son las opciones compartidas por /torneos y /filtros set.
func filterOptions(modes []gamemodes.Mode) []*discordgo.ApplicationCommandOption {
	modeChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(modes))
	for _, m := range modes {
		if len(modeChoices) == maxChoices {
			break
		}
		modeChoices = append(modeChoices, &discordgo.ApplicationCommandOptionChoice{Name: m.Name, Value: m.ID})
	}
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "modo",
			Description: "Modo de juego",
			Choices:     modeChoices,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "estado",
			Description: "En curso o en preparación",
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "todos", Value: domain.FilterAll},
				{Name: "en curso", Value: domain.StatusInProgress},
				{Name: "en preparación", Value: domain.StatusInPreparation},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tipo",
			Description: "Abiertos o con contraseña",
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "todos", Value: domain.FilterAll},
				{Name: "abiertos", Value: domain.TypeFilterOpen},
				{Name: "con contraseña", Value: domain.TypeFilterPassword},
			},
		},
		{Type: discordgo.ApplicationCommandOptionInteger, Name: "nivel", Description: "Level cap exacto", MinValue: &zero},
		{Type: discordgo.ApplicationCommandOptionInteger, Name: "min_jugadores", Description: "Mínimo de jugadores", MinValue: &zero},
		{Type: discordgo.ApplicationCommandOptionInteger, Name: "max_jugadores", Description: "Máximo de jugadores (0 = sin máximo)", MinValue: &zero},
		{Type: discordgo.ApplicationCommandOptionInteger, Name: "min_restante", Description: "Mínimo de minutos restantes", MinValue: &zero},
		{Type: discordgo.ApplicationCommandOptionInteger, Name: "max_restante", Description: "Máximo de minutos restantes (0 = sin máximo)", MinValue: &zero},
	}
}

func Commands(modes []gamemodes.Mode) []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Chequeo rápido del bot",
		},
		{
			Name:        "torneos",
			Description: "Busca torneos de Clash Royale (sin opciones usa los filtros guardados)",
			Options:     filterOptions(modes),
		},
		{
			Name:        "modos",
			Description: "Lista los modos de juego que se pueden filtrar",
		},
		{
			Name:        "filtros",
			Description: "Ver o cambiar los filtros guardados (admins)",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "show", Description: "Ver filtros guardados"},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Actualizar filtros (sólo lo que pases)",
					Options:     filterOptions(modes),
				},
			},
		},
	}
}
