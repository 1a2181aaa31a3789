package usecase

import (
	"fmt"
	"sync"
	"time"

	"bus-ticketing/internal/seating"

	"github.com/google/uuid"
)

type storedSession struct {
	session *seating.Session
	touched time.Time
}

// SessionStore keeps selection sessions in memory. Sessions are never
// persisted; with a TTL, a session idle for longer is dropped on next
// access. Dropping a session only discards staged seats.
type SessionStore struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*storedSession
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*storedSession),
	}
}

func (st *SessionStore) expired(s *storedSession, now time.Time) bool {
	return st.ttl > 0 && now.Sub(s.touched) > st.ttl
}

// lookup returns a live session; callers hold mu.
func (st *SessionStore) lookup(id uuid.UUID) (*storedSession, error) {
	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if st.expired(s, st.now()) {
		delete(st.sessions, id)
		return nil, fmt.Errorf("session %s expired: %w", id, ErrNotFound)
	}
	return s, nil
}

func (st *SessionStore) Create(tripID uuid.UUID) *seating.Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.purgeLocked()

	s := seating.NewSession(tripID)
	s.CreatedAt = st.now()
	st.sessions[s.ID] = &storedSession{session: s, touched: s.CreatedAt}
	return s.Clone()
}

// Get returns a copy of the session.
func (st *SessionStore) Get(id uuid.UUID) (*seating.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.session.Clone(), nil
}

// Update applies fn to a copy of the session and keeps the copy only when
// fn succeeds.
func (st *SessionStore) Update(id uuid.UUID, fn func(*seating.Session) error) (*seating.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.lookup(id)
	if err != nil {
		return nil, err
	}

	next := s.session.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	s.session = next
	s.touched = st.now()
	return next.Clone(), nil
}

// Delete removes the session and reports whether it existed.
func (st *SessionStore) Delete(id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	_, err := st.lookup(id)
	delete(st.sessions, id)
	return err == nil
}

// Purge drops every expired session and returns how many went.
func (st *SessionStore) Purge() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.purgeLocked()
}

func (st *SessionStore) purgeLocked() int {
	if st.ttl <= 0 {
		return 0
	}
	now := st.now()
	n := 0
	for id, s := range st.sessions {
		if st.expired(s, now) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
