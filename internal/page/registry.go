package page

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	board    *Board
	lastSeen time.Time
}

// Registry maps visitor session ids to their boards. Sessions idle longer
// than maxIdle are evicted, and at most maxSessions are kept; zero disables
// either limit.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]*session
	maxIdle     time.Duration
	maxSessions int
	now         func() time.Time
}

func NewRegistry(maxIdle time.Duration, maxSessions int) *Registry {
	return &Registry{
		sessions:    make(map[string]*session),
		maxIdle:     maxIdle,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// SetClock replaces the time source used for idle tracking.
func (r *Registry) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// Create opens a new session with a fresh board. When the registry is full
// the least recently seen session is dropped.
func (r *Registry) Create() (string, *Board) {
	id := uuid.NewString()
	board := NewBoard()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictIdleLocked()
	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		r.evictOldestLocked()
	}
	r.sessions[id] = &session{board: board, lastSeen: r.now()}

	return id, board
}

// Get returns the board for id and marks the session as seen.
func (r *Registry) Get(id string) (*Board, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if r.expiredLocked(s) {
		delete(r.sessions, id)
		return nil, false
	}
	s.lastSeen = r.now()
	return s.board, true
}

// GetOrCreate returns the board for id, opening a new session when id is
// empty, unknown or expired.
func (r *Registry) GetOrCreate(id string) (string, *Board) {
	if b, ok := r.Get(id); ok {
		return id, b
	}
	return r.Create()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// EvictIdle drops every session idle longer than maxIdle and reports how many went.
func (r *Registry) EvictIdle() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.evictIdleLocked()
}

// Each calls fn for every live session. fn runs outside the registry lock and
// does not count as activity.
func (r *Registry) Each(fn func(id string, b *Board)) {
	r.mu.Lock()
	ids := make([]string, 0, len(r.sessions))
	boards := make([]*Board, 0, len(r.sessions))
	for id, s := range r.sessions {
		if r.expiredLocked(s) {
			continue
		}
		ids = append(ids, id)
		boards = append(boards, s.board)
	}
	r.mu.Unlock()

	for i := range ids {
		fn(ids[i], boards[i])
	}
}

func (r *Registry) expiredLocked(s *session) bool {
	return r.maxIdle > 0 && r.now().Sub(s.lastSeen) > r.maxIdle
}

func (r *Registry) evictIdleLocked() int {
	if r.maxIdle <= 0 {
		return 0
	}
	evicted := 0
	for id, s := range r.sessions {
		if r.expiredLocked(s) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (r *Registry) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, s := range r.sessions {
		if oldestID == "" || s.lastSeen.Before(oldest) {
			oldestID, oldest = id, s.lastSeen
		}
	}
	if oldestID != "" {
		delete(r.sessions, oldestID)
	}
}
