package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

// MemoryFilterRepo se usa cuando no hay DATABASE_URL; se pierde al reiniciar.
type MemoryFilterRepo struct {
	mu       sync.RWMutex
	profiles map[string]domain.FilterSpec
}

func NewMemoryFilterRepo() *MemoryFilterRepo {
	return &MemoryFilterRepo{profiles: map[string]domain.FilterSpec{}}
}

func (r *MemoryFilterRepo) Get(_ context.Context, profileID string) (domain.FilterSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.profiles[profileID]; ok {
		return cloneSpec(f), nil
	}
	return domain.FilterSpec{Type: domain.FilterAll, Status: domain.FilterAll}, nil
}

func (r *MemoryFilterRepo) Upsert(_ context.Context, profileID string, f domain.FilterSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profileID] = cloneSpec(f)
	return nil
}

// los slices y punteros no se comparten con el caller
func cloneSpec(f domain.FilterSpec) domain.FilterSpec {
	f.GameModes = slices.Clone(f.GameModes)
	f.LevelCaps = slices.Clone(f.LevelCaps)
	f.MinPlayers = cloneInt(f.MinPlayers)
	f.MaxPlayers = cloneInt(f.MaxPlayers)
	f.MinRemaining = cloneInt(f.MinRemaining)
	f.MaxRemaining = cloneInt(f.MaxRemaining)
	return f
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
