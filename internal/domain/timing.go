package domain

import (
	"strings"
	"time"
)

// Formato de la API: 20260105T220549.000Z (UTC).
const APITimeLayout = "20060102T150405.000Z"

// al parsear se acepta cualquier cantidad de decimales, pero tienen que estar
const apiTimeParseLayout = "20060102T150405.999999999Z"

func ParseAPITime(s string) (time.Time, bool) {
	if !strings.Contains(s, ".") {
		return time.Time{}, false
	}
	t, err := time.Parse(apiTimeParseLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// estimatedStart = createdTime + preparationDuration.
func estimatedStart(t Tournament) (time.Time, bool) {
	created, ok := ParseAPITime(t.CreatedTime)
	if !ok {
		return time.Time{}, false
	}
	return created.Add(time.Duration(t.PreparationDuration) * time.Second), true
}

func floorMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

// RemainingMinutes devuelve los minutos que le quedan al torneo.
// ok=false solo si no hay forma de ubicarlo en el tiempo (createdTime ilegible).
func RemainingMinutes(t Tournament, now time.Time) (int, bool) {
	if t.Status == StatusEnded {
		return 0, true
	}
	dur := time.Duration(t.Duration) * time.Second

	if t.Status == StatusInProgress {
		if started, ok := ParseAPITime(t.StartedTime); ok {
			return floorMinutes(started.Add(dur).Sub(now)), true
		}
	}

	start, ok := estimatedStart(t)
	if !ok {
		return 0, false
	}
	return floorMinutes(start.Add(dur).Sub(now)), true
}

// ElapsedMinutes solo aplica a torneos en curso.
func ElapsedMinutes(t Tournament, now time.Time) (int, bool) {
	if t.Status != StatusInProgress {
		return 0, false
	}
	start, ok := ParseAPITime(t.StartedTime)
	if !ok {
		if start, ok = estimatedStart(t); !ok {
			return 0, false
		}
	}
	return floorMinutes(now.Sub(start)), true
}
