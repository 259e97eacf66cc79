package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/cr-tournament-finder/internal/adapters/clashroyale"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

var quietLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSeedQueries(t *testing.T) {
	seeds := SeedQueries()
	assert.Len(t, seeds, 26*26+10+len(commonWords))
	assert.Equal(t, "aa", seeds[0])
	assert.Contains(t, seeds, "zz")
	assert.Contains(t, seeds, "7")
	assert.Contains(t, seeds, "torneo")
}

func TestChildQueries(t *testing.T) {
	kids := ChildQueries("ab")
	require.Len(t, kids, 36)
	seen := map[string]bool{}
	for _, k := range kids {
		assert.Len(t, k, 3)
		assert.Equal(t, "ab", k[:2])
		seen[k] = true
	}
	assert.Len(t, seen, 36)
	assert.True(t, seen["abz"])
	assert.True(t, seen["ab0"])
}

func TestFrontierNeverRepeats(t *testing.T) {
	f := newFrontier([]string{"aa", "ab", "aa"})
	assert.Equal(t, []string{"aa", "ab"}, f.next())

	f.push("aa")
	f.push("ac")
	f.push("ac")
	assert.True(t, f.seen("ab"))
	assert.Equal(t, []string{"ac"}, f.next())
	assert.Empty(t, f.next())
}

func TestCrawlDedupsAcrossQueries(t *testing.T) {
	api := newFakeAPI()
	shared := domain.Tournament{Tag: "#XYZ123", Name: "aab torneo", GameModeID: "72000001"}

	// "aa" llena la página para que se expanda y llegue a "aab"
	aa := fullPage("aa")
	aa.Items[0] = shared
	api.pages["aa"] = aa
	api.pages["aab"] = domain.SearchPage{Items: []domain.Tournament{shared}}

	res, err := NewCrawler(api, quietLog, WithSeeds([]string{"aa"})).Crawl(context.Background())
	require.NoError(t, err)

	count := 0
	tags := map[string]int{}
	for _, tr := range res.Tournaments {
		tags[tr.Tag]++
		if tr.Tag == "#XYZ123" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	for tag, n := range tags {
		assert.Equal(t, 1, n, tag)
	}
	assert.Contains(t, api.searched(), "aab")
	assert.Equal(t, 1, res.Stats.DrillDowns)
	assert.Equal(t, 37, res.Stats.Queries)
	assert.Equal(t, 2, res.Stats.Rounds)
	assert.True(t, sort.SliceIsSorted(res.Tournaments, func(i, j int) bool {
		return res.Tournaments[i].Tag < res.Tournaments[j].Tag
	}))
}

func TestCrawlExpandsFullPagesOnly(t *testing.T) {
	api := newFakeAPI()
	api.fullPage = func(q string) bool { return q == "ab" }
	api.pages["cd"] = domain.SearchPage{Items: []domain.Tournament{{Tag: "#CD"}}}

	res, err := NewCrawler(api, quietLog, WithSeeds([]string{"ab", "cd"})).Crawl(context.Background())
	require.NoError(t, err)

	calls := api.searched()
	assert.Len(t, calls, 2+36)
	for _, q := range calls[2:] {
		assert.Len(t, q, 3)
		assert.Equal(t, "ab", q[:2])
	}
	assert.Equal(t, 1, res.Stats.DrillDowns)
	assert.Len(t, res.Tournaments, 21)
}

func TestCrawlDepthCap(t *testing.T) {
	api := newFakeAPI()
	api.fullPage = func(string) bool { return true }

	res, err := NewCrawler(api, quietLog, WithSeeds([]string{"abc"})).Crawl(context.Background())
	require.NoError(t, err)

	calls := api.searched()
	require.Len(t, calls, 1+36)
	for _, q := range calls {
		assert.LessOrEqual(t, len(q), DefaultMaxQueryLen)
	}
	assert.Equal(t, 1, res.Stats.DrillDowns)
	assert.Equal(t, 2, res.Stats.Rounds)
}

func TestCrawlTerminatesWhenEverythingIsFull(t *testing.T) {
	api := newFakeAPI()
	api.fullPage = func(string) bool { return true }

	// desde dos letras: 1 + 36 + 36*36 queries, 3 rondas
	res, err := NewCrawler(api, quietLog, WithSeeds([]string{"qq"})).Crawl(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Stats.Rounds)
	assert.Equal(t, 1+36+36*36, res.Stats.Queries)
	assert.Equal(t, 1+36, res.Stats.DrillDowns)

	for _, q := range api.searched() {
		assert.LessOrEqual(t, len(q), DefaultMaxQueryLen)
	}
}

func TestCrawlFailuresDoNotStopTheCrawl(t *testing.T) {
	api := newFakeAPI()
	api.searchErr["aa"] = &clashroyale.APIError{Status: 500, Body: "boom"}
	api.searchErr["ab"] = clashroyale.ErrRateLimited
	api.searchErr["ac"] = errors.New("dial tcp: timeout")
	api.pages["ad"] = domain.SearchPage{Items: []domain.Tournament{{Tag: "#AD", GameModeID: "72000005"}, {Tag: "#AD2"}}}

	res, err := NewCrawler(api, quietLog, WithSeeds([]string{"aa", "ab", "ac", "ad"})).Crawl(context.Background())
	require.NoError(t, err)

	assert.Len(t, res.Tournaments, 2)
	assert.Equal(t, 1, res.Stats.Queries)
	assert.Equal(t, 2, res.Stats.APIErrors)
	assert.Equal(t, 2, res.Stats.RateLimits)
	assert.Equal(t, map[string]int{"72000005": 1, "unknown": 1}, res.Stats.ByMode)
	assert.Len(t, api.searched(), 4)
}

func TestCrawlStatsAreFreshPerRun(t *testing.T) {
	api := newFakeAPI()
	api.pages["aa"] = domain.SearchPage{Items: []domain.Tournament{{Tag: "#A"}}}
	c := NewCrawler(api, quietLog, WithSeeds([]string{"aa"}))

	first, err := c.Crawl(context.Background())
	require.NoError(t, err)
	second, err := c.Crawl(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, first.Stats.Queries)
	assert.Equal(t, 1, second.Stats.Queries)
	assert.Equal(t, 1, second.Stats.ByMode["unknown"])
}

func TestCrawlHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCrawler(newFakeAPI(), quietLog, WithSeeds([]string{"aa"})).Crawl(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCrawlCountsCallTimeoutsAsAPIErrors(t *testing.T) {
	api := newFakeAPI()
	// timeout del http.Client: la llamada vence pero el crawl sigue vivo
	api.searchErr["aa"] = &url.Error{Op: "Get", URL: "https://proxy/tournaments", Err: fmt.Errorf("clash royale http: %w", context.DeadlineExceeded)}
	api.pages["ab"] = domain.SearchPage{Items: []domain.Tournament{{Tag: "#AB"}}}

	res, err := NewCrawler(api, quietLog, WithSeeds([]string{"aa", "ab"})).Crawl(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.APIErrors)
	assert.Equal(t, 1, res.Stats.Queries)
	assert.Len(t, res.Tournaments, 1)
}

func TestCrawlRespectsWorkerLimit(t *testing.T) {
	api := newFakeAPI()
	api.delay = 5 * time.Millisecond
	seeds := SeedQueries()[:40]

	res, err := NewCrawler(api, quietLog, WithSeeds(seeds), WithCrawlWorkers(3)).Crawl(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40, res.Stats.Queries)
	assert.LessOrEqual(t, api.peakInFlight(), 3)
	assert.GreaterOrEqual(t, api.peakInFlight(), 1)
}

func TestCrawlCancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := newFakeAPI()
	api.fullPage = func(string) bool { return true }
	api.onSearch = func(q string) {
		if q == "qq" {
			cancel()
		}
	}

	_, err := NewCrawler(api, quietLog, WithSeeds([]string{"qq"})).Crawl(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	// la ronda de hijos nunca arranca
	assert.Equal(t, []string{"qq"}, api.searched())
}
