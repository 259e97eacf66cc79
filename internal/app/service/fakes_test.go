package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jose-valero/cr-tournament-finder/internal/adapters/clashroyale"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

// fakeAPI responde desde mapas; registra cada query para verificar el crawl.
type fakeAPI struct {
	mu         sync.Mutex
	configured bool
	pages      map[string]domain.SearchPage
	searchErr  map[string]error
	fullPage   func(q string) bool // si da true se devuelve una página llena sintética
	details    map[string]domain.Tournament
	calls      []string
	detailHits []string

	delay       time.Duration  // cuánto tarda cada búsqueda
	onSearch    func(q string) // se llama antes de responder
	inFlight    int
	maxInFlight int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		configured: true,
		pages:      map[string]domain.SearchPage{},
		searchErr:  map[string]error{},
		details:    map[string]domain.Tournament{},
	}
}

func (f *fakeAPI) Configured() bool { return f.configured }

func (f *fakeAPI) SearchTournaments(_ context.Context, name string) (domain.SearchPage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.onSearch != nil {
		f.onSearch(name)
	}

	if err, ok := f.searchErr[name]; ok {
		hits := 0
		if errors.Is(err, clashroyale.ErrRateLimited) {
			hits = 2
		}
		return domain.SearchPage{RateLimitHits: hits}, err
	}
	if f.fullPage != nil && f.fullPage(name) {
		return fullPage(name), nil
	}
	return f.pages[name], nil
}

func (f *fakeAPI) GetTournament(_ context.Context, tag string) (*domain.Tournament, error) {
	f.mu.Lock()
	f.detailHits = append(f.detailHits, tag)
	f.mu.Unlock()

	d, ok := f.details[tag]
	if !ok {
		return nil, &clashroyale.APIError{Status: 503, Body: "unavailable"}
	}
	return &d, nil
}

func (f *fakeAPI) peakInFlight() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxInFlight
}

func (f *fakeAPI) searched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// fullPage: 20 torneos con tags derivados de la query.
func fullPage(q string) domain.SearchPage {
	items := make([]domain.Tournament, DefaultPageCap)
	for i := range items {
		items[i] = domain.Tournament{Tag: fmt.Sprintf("#%s-%02d", q, i), Name: q, GameModeID: "72000009"}
	}
	return domain.SearchPage{Items: items}
}

type staticModes map[string]string

func (m staticModes) Name(id string) string {
	if n, ok := m[id]; ok {
		return n
	}
	return "Unknown (" + id + ")"
}
