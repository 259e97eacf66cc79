package discord

import (
	"sync"
	"time"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

// reportCache guarda los reportes recientes solo para paginar los botones.
type reportCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]cachedReport
	now   func() time.Time
}

type cachedReport struct {
	rep domain.Report
	at  time.Time
}

func newReportCache(ttl time.Duration) *reportCache {
	return &reportCache{ttl: ttl, items: map[string]cachedReport{}, now: time.Now}
}

func (c *reportCache) put(rep domain.Report) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, it := range c.items {
		if now.Sub(it.at) > c.ttl {
			delete(c.items, id)
		}
	}
	c.items[rep.RunID] = cachedReport{rep: rep, at: now}
}

func (c *reportCache) get(runID string) (domain.Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[runID]
	if !ok || c.now().Sub(it.at) > c.ttl {
		return domain.Report{}, false
	}
	return it.rep, true
}
