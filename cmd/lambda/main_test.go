package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/cr-tournament-finder/internal/adapters/clashroyale"
	"github.com/jose-valero/cr-tournament-finder/internal/adapters/httpapi"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
	"github.com/jose-valero/cr-tournament-finder/internal/infra/config"
)

type stubFinder struct {
	got *domain.FilterSpec
	err error
}

func (f *stubFinder) Run(_ context.Context, spec domain.FilterSpec) (domain.Report, error) {
	f.got = &spec
	return domain.Report{
		RunID: "r",
		Total: 1,
		Tournaments: []domain.Listing{{
			Tournament: domain.Tournament{Tag: "#A", Capacity: 10, MaxCapacity: 50},
			ModeName:   "Normal",
		}},
	}, f.err
}

type stubFilters domain.FilterSpec

func (f stubFilters) Get(context.Context, string) (domain.FilterSpec, error) {
	return domain.FilterSpec(f), nil
}

func TestHandle_QueryParams(t *testing.T) {
	fin := &stubFinder{}
	h := handler{finder: fin, filters: stubFilters{}}

	res, err := h.handle(context.Background(), events.APIGatewayV2HTTPRequest{
		QueryStringParameters: map[string]string{"game_modes": "72000009,72000042", "max_remaining_minutes": "30"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.NotNil(t, fin.got)
	assert.Equal(t, []string{"72000009", "72000042"}, fin.got.GameModes)
	require.NotNil(t, fin.got.MaxRemaining)
	assert.Equal(t, 30, *fin.got.MaxRemaining)

	// misma forma que /api/tournaments
	var body httpapi.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(res.Body), &body))
	assert.Equal(t, "r", body.RunID)
	require.Len(t, body.Tournaments, 1)
	assert.Equal(t, 10, body.Tournaments[0].Players)
	assert.Equal(t, 50, body.Tournaments[0].MaxPlayers)
	assert.Nil(t, body.Tournaments[0].LevelCap)
	assert.Contains(t, res.Body, `"levelCap":null`)
}

func TestHandle_SavedFiltersWithoutParams(t *testing.T) {
	fin := &stubFinder{}
	saved := stubFilters{Type: domain.TypeFilterOpen}
	h := handler{finder: fin, filters: saved}

	_, err := h.handle(context.Background(), events.APIGatewayV2HTTPRequest{})
	require.NoError(t, err)
	require.NotNil(t, fin.got)
	assert.Equal(t, domain.TypeFilterOpen, fin.got.Type)
}

func TestHandle_Password(t *testing.T) {
	h := handler{cfg: config.Config{Password: "pw"}, finder: &stubFinder{}, filters: stubFilters{}}

	res, _ := h.handle(context.Background(), events.APIGatewayV2HTTPRequest{})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = h.handle(context.Background(), events.APIGatewayV2HTTPRequest{
		Headers: map[string]string{"X-Finder-Password": "pw"},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestHandle_Errors(t *testing.T) {
	h := handler{finder: &stubFinder{err: clashroyale.ErrMissingAPIKey}, filters: stubFilters{}}
	res, _ := h.handle(context.Background(), events.APIGatewayV2HTTPRequest{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.JSONEq(t, `{"error":"API key not configured"}`, res.Body)

	h = handler{finder: &stubFinder{}, filters: stubFilters{}}
	res, _ = h.handle(context.Background(), events.APIGatewayV2HTTPRequest{
		QueryStringParameters: map[string]string{"status": "ended"},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
