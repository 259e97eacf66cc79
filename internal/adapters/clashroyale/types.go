package clashroyale

import (
	"strconv"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

// --- Tournaments ---
type tournamentDTO struct {
	Tag                 string `json:"tag"`
	Name                string `json:"name"`
	Type                string `json:"type"`
	Status              string `json:"status"`
	Capacity            int    `json:"capacity"`
	MaxCapacity         int    `json:"maxCapacity"`
	LevelCap            int    `json:"levelCap"`
	PreparationDuration int    `json:"preparationDuration"`
	Duration            int    `json:"duration"`
	CreatedTime         string `json:"createdTime"`
	StartedTime         string `json:"startedTime"`
	EndedTime           string `json:"endedTime"`
	GameMode            *struct {
		ID int64 `json:"id"`
	} `json:"gameMode"`
}

// paging existe pero no es estable entre queries, no lo usamos
type tournamentSearchDTO struct {
	Items []tournamentDTO `json:"items"`
}

func (d tournamentDTO) toDomain() domain.Tournament {
	t := domain.Tournament{
		Tag:                 d.Tag,
		Name:                d.Name,
		Type:                d.Type,
		Status:              d.Status,
		Capacity:            d.Capacity,
		MaxCapacity:         d.MaxCapacity,
		LevelCap:            d.LevelCap,
		CreatedTime:         d.CreatedTime,
		PreparationDuration: d.PreparationDuration,
		Duration:            d.Duration,
		StartedTime:         d.StartedTime,
		EndedTime:           d.EndedTime,
	}
	if d.GameMode != nil {
		t.GameModeID = strconv.FormatInt(d.GameMode.ID, 10)
	}
	return t
}
