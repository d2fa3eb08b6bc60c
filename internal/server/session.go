package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"validation-guide/internal/capture"
	"validation-guide/internal/presentation"
)

// Session is one visitor's in-memory state: a capture widget and the
// expanded/collapsed flags of the page. Nothing here outlives the process.
type Session struct {
	ID      string
	Widget  *capture.Widget
	Toggles *presentation.ToggleState

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionStore keeps sessions keyed by cookie id
type SessionStore struct {
	analyzer capture.Analyzer
	clock    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty store whose widgets use analyzer
func NewSessionStore(analyzer capture.Analyzer, clock func() time.Time) *SessionStore {
	if clock == nil {
		clock = time.Now
	}
	return &SessionStore{
		analyzer: analyzer,
		clock:    clock,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, if any, and marks it as used
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		sess.touch(s.clock())
	}
	return sess, ok
}

// Blank returns a default session that is not stored and has no id
func (s *SessionStore) Blank() *Session {
	return &Session{
		Widget:   capture.NewWidget(s.analyzer),
		Toggles:  presentation.NewCatalogToggles(),
		lastSeen: s.clock(),
	}
}

// Create starts a fresh session
func (s *SessionStore) Create() *Session {
	sess := s.Blank()
	sess.ID = uuid.NewString()

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions unused for longer than maxIdle and returns how many were removed
func (s *SessionStore) Sweep(maxIdle time.Duration) int {
	cutoff := s.clock().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
