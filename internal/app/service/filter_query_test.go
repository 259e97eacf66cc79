package service

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

func TestFilterSpecFromValues(t *testing.T) {
	v := url.Values{
		"game_modes":            {"72000001", "72000005,72000009"},
		"tournament_type":       {"open"},
		"status":                {"inProgress"},
		"level_caps":            {"11,13"},
		"min_players":           {"10"},
		"max_players":           {"0"},
		"min_remaining_minutes": {"15"},
		"max_remaining_minutes": {"90"},
	}
	spec, err := FilterSpecFromValues(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"72000001", "72000005", "72000009"}, spec.GameModes)
	assert.Equal(t, domain.TypeFilterOpen, spec.Type)
	assert.Equal(t, domain.StatusInProgress, spec.Status)
	assert.Equal(t, []int{11, 13}, spec.LevelCaps)
	assert.Equal(t, 10, *spec.MinPlayers)
	assert.Nil(t, spec.MaxPlayers)
	assert.Equal(t, 15, *spec.MinRemaining)
	assert.Equal(t, 90, *spec.MaxRemaining)
}

func TestFilterSpecFromEmptyValues(t *testing.T) {
	spec, err := FilterSpecFromValues(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, domain.FilterAll, spec.Type)
	assert.Equal(t, domain.FilterAll, spec.Status)
	assert.Empty(t, spec.GameModes)
	assert.Nil(t, spec.MinPlayers)
	assert.False(t, spec.HasTimeConstraints())
}

func TestFilterSpecFromValuesRejectsGarbage(t *testing.T) {
	for _, v := range []url.Values{
		{"tournament_type": {"secret"}},
		{"status": {"ended"}},
		{"level_caps": {"11,x"}},
		{"min_players": {"lots"}},
		{"max_remaining_minutes": {"-5"}},
	} {
		_, err := FilterSpecFromValues(v)
		assert.Error(t, err, v.Encode())
	}
}

func TestValuesFromMap(t *testing.T) {
	spec, err := FilterSpecFromValues(ValuesFromMap(map[string]string{"game_modes": "72000001,72000042"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"72000001", "72000042"}, spec.GameModes)
}
