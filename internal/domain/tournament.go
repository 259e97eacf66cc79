package domain

import "time"

// Valores tal cual los devuelve la API de Clash Royale.
const (
	TypeOpen              = "open"
	TypePasswordProtected = "passwordProtected"

	StatusInPreparation = "inPreparation"
	StatusInProgress    = "inProgress"
	StatusEnded         = "ended"
)

// Tournament es el snapshot en memoria de un torneo durante un ciclo.
// El Tag lo identifica; dos registros con el mismo Tag son el mismo torneo.
type Tournament struct {
	Tag                 string `json:"tag"`
	Name                string `json:"name"`
	Type                string `json:"type"`
	Status              string `json:"status"`
	Capacity            int    `json:"capacity"`
	MaxCapacity         int    `json:"maxCapacity"`
	LevelCap            int    `json:"levelCap,omitempty"`   // 0 = sin dato
	GameModeID          string `json:"gameModeId,omitempty"` // "" = sin dato
	CreatedTime         string `json:"createdTime,omitempty"`
	PreparationDuration int    `json:"preparationDuration"` // segundos
	Duration            int    `json:"duration"`            // segundos

	// Solo vienen del detalle (/tournaments/{tag}).
	StartedTime string `json:"startedTime,omitempty"`
	EndedTime   string `json:"endedTime,omitempty"`
}

// SearchPage: resultado de una búsqueda por substring.
// RateLimitHits cuenta las respuestas 429 vistas, también cuando la llamada termina en error.
type SearchPage struct {
	Items         []Tournament
	RateLimitHits int
}

// CrawlStats se construye de cero en cada crawl y se devuelve por valor.
type CrawlStats struct {
	Queries    int            `json:"queries"`
	DrillDowns int            `json:"drillDowns"`
	RateLimits int            `json:"rateLimits"`
	APIErrors  int            `json:"apiErrors"`
	ByMode     map[string]int `json:"tournamentsByMode"`

	Rounds  int           `json:"rounds"`
	Elapsed time.Duration `json:"-"`
}

// Listing es un torneo ya filtrado y decorado para mostrar.
// Remaining/Elapsed nil = desconocido.
type Listing struct {
	Tournament
	ModeName  string `json:"gameMode"`
	Remaining *int   `json:"remainingMinutes"`
	Elapsed   *int   `json:"elapsedMinutes"`
}

// Report es todo lo que necesita la capa de presentación.
type Report struct {
	RunID           string     `json:"runId"`
	Tournaments     []Listing  `json:"tournaments"`
	Total           int        `json:"total"`
	UnfilteredTotal int        `json:"unfilteredTotal"`
	Stats           CrawlStats `json:"stats"`
}
