package main

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

func TestSearchModel_Done(t *testing.T) {
	m := newSearchModel("buscando", func() {}, func() (domain.Report, error) {
		return domain.Report{Total: 2}, nil
	})

	msg := m.search()
	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)

	fm := next.(searchModel)
	assert.True(t, fm.done)
	assert.Equal(t, 2, fm.rep.Total)
	assert.Contains(t, fm.View(), "✔ buscando")
}

func TestSearchModel_CtrlCCancels(t *testing.T) {
	cancelled := false
	m := newSearchModel("buscando", func() { cancelled = true }, func() (domain.Report, error) {
		return domain.Report{}, nil
	})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	fm := next.(searchModel)
	assert.True(t, cancelled)
	assert.True(t, errors.Is(fm.err, context.Canceled))
	assert.Contains(t, fm.View(), "❌")
}

func TestRunWithSpinner_NoTTY(t *testing.T) {
	// bajo go test stderr no es una terminal: corre directo
	rep, err := runWithSpinner(context.Background(), "x", func(context.Context) (domain.Report, error) {
		return domain.Report{RunID: "r"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "r", rep.RunID)
}
