package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

func TestMemoryFilterRepo_DefaultsWhenMissing(t *testing.T) {
	r := NewMemoryFilterRepo()
	f, err := r.Get(context.Background(), "nuevo")
	require.NoError(t, err)
	assert.Equal(t, domain.FilterAll, f.Type)
	assert.Equal(t, domain.FilterAll, f.Status)
	assert.Nil(t, f.MaxPlayers)
}

func TestMemoryFilterRepo_UpsertDoesNotAlias(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryFilterRepo()
	spec := domain.FilterSpec{
		Type:       domain.TypeFilterOpen,
		GameModes:  []string{"72000009"},
		MinPlayers: domain.IntPtr(10),
	}
	require.NoError(t, r.Upsert(ctx, "default", spec))

	spec.GameModes[0] = "otro"
	*spec.MinPlayers = 99

	got, err := r.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, []string{"72000009"}, got.GameModes)
	require.NotNil(t, got.MinPlayers)
	assert.Equal(t, 10, *got.MinPlayers)
}
