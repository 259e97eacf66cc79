package service

import (
	"slices"
	"sort"
	"time"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

// StructuralFilter aplica los predicados que no dependen del tiempo.
// Es barato y corre antes de pedir detalles.
func StructuralFilter(ts []domain.Tournament, spec domain.FilterSpec) []domain.Tournament {
	out := make([]domain.Tournament, 0, len(ts))
	for _, t := range ts {
		if matchesStructure(t, spec) {
			out = append(out, t)
		}
	}
	return out
}

func matchesStructure(t domain.Tournament, spec domain.FilterSpec) bool {
	switch spec.Type {
	case domain.TypeFilterOpen:
		if t.Type != domain.TypeOpen {
			return false
		}
	case domain.TypeFilterPassword:
		if t.Type != domain.TypePasswordProtected {
			return false
		}
	}

	switch spec.Status {
	case domain.StatusInProgress, domain.StatusInPreparation:
		if t.Status != spec.Status {
			return false
		}
	}

	if len(spec.GameModes) > 0 && (t.GameModeID == "" || !slices.Contains(spec.GameModes, t.GameModeID)) {
		return false
	}
	if len(spec.LevelCaps) > 0 && (t.LevelCap == 0 || !slices.Contains(spec.LevelCaps, t.LevelCap)) {
		return false
	}

	// sin capacity = 0
	if spec.MinPlayers != nil && t.Capacity < *spec.MinPlayers {
		return false
	}
	if spec.MaxPlayers != nil && t.Capacity > *spec.MaxPlayers {
		return false
	}
	return true
}

// TemporalFilter calcula remaining/elapsed, aplica la ventana de minutos restantes y ordena:
// desconocidos al final, luego remaining ascendente, luego más jugadores primero.
// Un remaining desconocido no se descarta por la ventana.
func TemporalFilter(ts []domain.Tournament, spec domain.FilterSpec, now time.Time, modes ModeNamer) []domain.Listing {
	out := make([]domain.Listing, 0, len(ts))
	for _, t := range ts {
		l := decorate(t, now, modes)
		if l.Remaining != nil {
			if spec.MinRemaining != nil && *l.Remaining < *spec.MinRemaining {
				continue
			}
			if spec.MaxRemaining != nil && *l.Remaining > *spec.MaxRemaining {
				continue
			}
		}
		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Remaining == nil) != (b.Remaining == nil) {
			return b.Remaining == nil
		}
		if a.Remaining != nil && *a.Remaining != *b.Remaining {
			return *a.Remaining < *b.Remaining
		}
		return a.Capacity > b.Capacity
	})
	return out
}

// ApplyFilters compone las dos etapas sin pasar por el detalle.
func ApplyFilters(ts []domain.Tournament, spec domain.FilterSpec, now time.Time, modes ModeNamer) []domain.Listing {
	return TemporalFilter(StructuralFilter(ts, spec), spec, now, modes)
}

func decorate(t domain.Tournament, now time.Time, modes ModeNamer) domain.Listing {
	l := domain.Listing{Tournament: t, ModeName: modeName(modes, t.GameModeID)}
	if v, ok := domain.RemainingMinutes(t, now); ok {
		l.Remaining = &v
	}
	if v, ok := domain.ElapsedMinutes(t, now); ok {
		l.Elapsed = &v
	}
	return l
}

func modeName(modes ModeNamer, id string) string {
	if modes != nil {
		return modes.Name(id)
	}
	if id == "" {
		return "Unknown"
	}
	return "Unknown (" + id + ")"
}
