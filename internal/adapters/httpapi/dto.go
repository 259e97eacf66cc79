package httpapi

import "github.com/jose-valero/cr-tournament-finder/internal/domain"

// TournamentJSON es la forma pública de un torneo en /api/tournaments y en la lambda.
type TournamentJSON struct {
	Tag              string `json:"tag"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Status           string `json:"status"`
	Players          int    `json:"players"`
	MaxPlayers       int    `json:"maxPlayers"`
	LevelCap         *int   `json:"levelCap"`
	GameMode         string `json:"gameMode"`
	GameModeID       string `json:"gameModeId,omitempty"`
	RemainingMinutes *int   `json:"remainingMinutes"`
	ElapsedMinutes   *int   `json:"elapsedMinutes"`
}

type SearchResponse struct {
	RunID           string            `json:"runId"`
	Tournaments     []TournamentJSON  `json:"tournaments"`
	Total           int               `json:"total"`
	UnfilteredTotal int               `json:"unfilteredTotal"`
	Stats           domain.CrawlStats `json:"stats"`
}

func NewSearchResponse(rep domain.Report) SearchResponse {
	out := SearchResponse{
		RunID:           rep.RunID,
		Tournaments:     make([]TournamentJSON, 0, len(rep.Tournaments)),
		Total:           rep.Total,
		UnfilteredTotal: rep.UnfilteredTotal,
		Stats:           rep.Stats,
	}
	for _, l := range rep.Tournaments {
		var lc *int
		if l.LevelCap > 0 {
			lc = domain.IntPtr(l.LevelCap)
		}
		out.Tournaments = append(out.Tournaments, TournamentJSON{
			Tag:              l.Tag,
			Name:             l.Name,
			Type:             l.Type,
			Status:           l.Status,
			Players:          l.Capacity,
			MaxPlayers:       l.MaxCapacity,
			LevelCap:         lc,
			GameMode:         l.ModeName,
			GameModeID:       l.GameModeID,
			RemainingMinutes: l.Remaining,
			ElapsedMinutes:   l.Elapsed,
		})
	}
	return out
}

// filtersJSON usa los mismos nombres que los query params de /api/tournaments.
type filtersJSON struct {
	TournamentType      string   `json:"tournament_type"`
	Status              string   `json:"status"`
	GameModes           []string `json:"game_modes"`
	LevelCaps           []int    `json:"level_caps"`
	MinPlayers          *int     `json:"min_players"`
	MaxPlayers          *int     `json:"max_players"`
	MinRemainingMinutes *int     `json:"min_remaining_minutes"`
	MaxRemainingMinutes *int     `json:"max_remaining_minutes"`
}

func toFiltersJSON(f domain.FilterSpec) filtersJSON {
	return filtersJSON{
		TournamentType:      orAll(f.Type),
		Status:              orAll(f.Status),
		GameModes:           nonNil(f.GameModes),
		LevelCaps:           nonNilInts(f.LevelCaps),
		MinPlayers:          f.MinPlayers,
		MaxPlayers:          f.MaxPlayers,
		MinRemainingMinutes: f.MinRemaining,
		MaxRemainingMinutes: f.MaxRemaining,
	}
}

type configJSON struct {
	HasAPIKey     bool        `json:"has_api_key"`
	APIKeyFromEnv bool        `json:"api_key_from_env"`
	MaskedKey     *string     `json:"masked_key"`
	Filters       filtersJSON `json:"filters"`
}

type saveConfigJSON struct {
	APIKey  *string      `json:"api_key"`
	Filters *filtersJSON `json:"filters"`
}

func orAll(s string) string {
	if s == "" {
		return domain.FilterAll
	}
	return s
}

func nonNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}

func nonNilInts(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}
