package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/cr-tournament-finder/internal/app/service"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
	"github.com/jose-valero/cr-tournament-finder/internal/infra/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(config.Config{LogFormat: "json"}, &buf).Info("hola", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hola"`)
}

func TestModesFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "modes.yaml")
	require.NoError(t, os.WriteFile(p, []byte("modes:\n  - id: \"1\"\n    name: Uno\n    common: true\n"), 0o600))

	c, err := Modes(config.Config{GameModesFile: p})
	require.NoError(t, err)
	assert.Equal(t, "Uno", c.Name("1"))

	_, err = Modes(config.Config{GameModesFile: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}

func TestNewFiltersInMemory(t *testing.T) {
	ctx := context.Background()
	svc, closeFn, err := NewFilters(ctx, config.Config{})
	require.NoError(t, err)
	defer closeFn()

	typ := domain.TypeFilterOpen
	_, err = svc.Update(ctx, "default", serviceTypePatch(typ))
	require.NoError(t, err)
	f, err := svc.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, typ, f.Type)
}

func TestNewFinderWithoutKey(t *testing.T) {
	modes, err := Modes(config.Config{})
	require.NoError(t, err)
	f := NewFinder(config.Config{CrawlWorkers: 4, DetailWorkers: 4}, modes, slog.Default())
	assert.False(t, f.Configured())
}

func serviceTypePatch(typ string) service.FilterPatch {
	return service.FilterPatch{Type: &typ}
}
