package discord

import (
	"sync"
	"time"
)

// userLimiter: una acción por usuario cada win.
type userLimiter struct {
	mu   sync.Mutex
	next map[string]time.Time
	win  time.Duration
	now  func() time.Time
}

func newUserLimiter(window time.Duration) *userLimiter {
	return &userLimiter{next: map[string]time.Time{}, win: window, now: time.Now}
}

// Allow devuelve false y cuánto falta si el usuario todavía está en cooldown.
func (l *userLimiter) Allow(userID string) (bool, time.Duration) {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.next[userID]; ok && now.Before(until) {
		return false, until.Sub(now)
	}
	l.next[userID] = now.Add(l.win)
	return true, 0
}

// Release libera el cooldown (p.ej. si la búsqueda ni siquiera arrancó).
func (l *userLimiter) Release(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.next, userID)
}
