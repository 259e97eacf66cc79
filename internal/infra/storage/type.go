package storage

import (
	"errors"
	"time"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

var ErrNotFound = errors.New("not found")

// FilterProfile es la fila de filter_profiles.
type FilterProfile struct {
	ProfileID            string
	Spec                 domain.FilterSpec
	CreatedAt, UpdatedAt time.Time
}
