package clashroyale

import (
	"context"
	"net/url"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

// La API corta en 20 items aunque pidamos más.
const searchLimit = "100"

// SearchTournaments: GET /tournaments?name=<q>&limit=100.
func (c *Client) SearchTournaments(ctx context.Context, name string) (domain.SearchPage, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("limit", searchLimit)

	var dto tournamentSearchDTO
	hits, err := c.doJSON(ctx, "GET", "/tournaments", q, &dto)
	page := domain.SearchPage{RateLimitHits: hits}
	if err != nil {
		return page, err
	}
	page.Items = make([]domain.Tournament, 0, len(dto.Items))
	for _, it := range dto.Items {
		if it.Tag == "" {
			continue
		}
		page.Items = append(page.Items, it.toDomain())
	}
	return page, nil
}

// GetTournament trae el detalle, que es el único que trae startedTime/endedTime.
func (c *Client) GetTournament(ctx context.Context, tag string) (*domain.Tournament, error) {
	var dto tournamentDTO
	if _, err := c.doJSON(ctx, "GET", "/tournaments/"+url.PathEscape(tag), nil, &dto); err != nil {
		return nil, err
	}
	t := dto.toDomain()
	return &t, nil
}
