package app

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/gopang/internal/navigation"
	"github.com/patrickmn/go-cache"
)

// Session serialises the events of one browser session against its State.
type Session struct {
	ID    string
	mu    sync.Mutex
	state *State
}

// Do runs fn with exclusive access to the session state.
func (s *Session) Do(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// Store keeps session state in process memory. Entries expire after ttl
// without activity; nothing is written anywhere else.
type Store struct {
	cache    *cache.Cache
	ttl      time.Duration
	mu       sync.Mutex
	observer func(sessionID string, t navigation.Transition)
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
func NewStore(ttl time.Duration) *Store {
	c := cache.New(ttl, ttl/2)
	c.OnEvicted(func(id string, _ interface{}) {
		slog.Debug("ui session expired", "session_id", id)
	})
	return &Store{cache: c, ttl: ttl}
}

// OnNavigate installs fn as the observer of every session's transitions.
// It only affects sessions created afterwards.
func (st *Store) OnNavigate(fn func(sessionID string, t navigation.Transition)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.observer = fn
}

// NewID returns a fresh session identifier.
func (st *Store) NewID() string {
	return uuid.NewString()
}

// Load returns the session for id, creating it with initial state when it
// does not exist or has expired. Every load extends the expiry.
func (st *Store) Load(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if v, ok := st.cache.Get(id); ok {
		sess := v.(*Session)
		st.cache.Set(id, sess, st.ttl)
		return sess
	}

	sess := &Session{ID: id, state: NewState()}
	if st.observer != nil {
		observer := st.observer
		sess.state.OnNavigate(func(t navigation.Transition) { observer(id, t) })
	}
	st.cache.Set(id, sess, st.ttl)
	slog.Debug("ui session created", "session_id", id)
	return sess
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	return st.cache.ItemCount()
}
