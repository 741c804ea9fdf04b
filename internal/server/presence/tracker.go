// Package presence derives online/offline state from client heartbeats.
// State lives only in memory and starts empty on every server start.
package presence

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

// DefaultTTL is how long a heartbeat keeps a user online.
const DefaultTTL = 90 * time.Second

// Tracker maps usernames to their last heartbeat. Stale entries are not
// swept; they are dropped lazily the next time they are looked at.
type Tracker struct {
	mu       sync.RWMutex
	lastSeen map[string]time.Time
	ttl      time.Duration
	now      func() time.Time
}

func NewTracker(ttl time.Duration) *Tracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tracker{
		lastSeen: make(map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (t *Tracker) Heartbeat(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSeen[username] = t.now()
}

func (t *Tracker) IsOnline(username string) bool {
	t.mu.RLock()
	seen, ok := t.lastSeen[username]
	now := t.now()
	t.mu.RUnlock()

	if !ok {
		return false
	}
	if now.Sub(seen) <= t.ttl {
		return true
	}

	t.mu.Lock()
	// a heartbeat may have landed between the two locks
	if cur, ok := t.lastSeen[username]; ok && cur.Equal(seen) {
		delete(t.lastSeen, username)
	}
	t.mu.Unlock()
	return false
}

// SetOffline forgets username. Unknown names are ignored.
func (t *Tracker) SetOffline(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.lastSeen, username)
}

// Snapshot reports every user in users as online or offline. Banned users
// are offline regardless of their heartbeats.
func (t *Tracker) Snapshot(users []*models.User) map[string]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	now := t.now()
	out := make(map[string]bool, len(users))
	for _, u := range users {
		seen, ok := t.lastSeen[u.UserName]
		out[u.UserName] = ok && !u.Banned && now.Sub(seen) <= t.ttl
	}
	return out
}
