package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/metgallery/pkg/gallery"
)

// DefaultSessionTTL is how long an idle browsing session is kept.
const DefaultSessionTTL = 30 * time.Minute

// sessionStore maps client-held IDs to browsing sessions.
type sessionStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*sessionEntry
	ttl     time.Duration
	now     func() time.Time
	newFn   func() *gallery.Session
}

type sessionEntry struct {
	session  *gallery.Session
	lastSeen time.Time
}

func newSessionStore(ttl time.Duration, newFn func() *gallery.Session) *sessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessionStore{
		entries: make(map[uuid.UUID]*sessionEntry),
		ttl:     ttl,
		now:     time.Now,
		newFn:   newFn,
	}
}

// get returns the live session for id. Malformed and expired IDs are not found.
func (s *sessionStore) get(id string) (*gallery.Session, bool) {
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.entries, key)
		return nil, false
	}
	e.lastSeen = now
	return e.session, true
}

// getOrCreate returns the session for id, or a new one when id is unknown.
func (s *sessionStore) getOrCreate(id string) (string, *gallery.Session) {
	if sess, ok := s.get(id); ok {
		return id, sess
	}
	return s.create()
}

func (s *sessionStore) create() (string, *gallery.Session) {
	key := uuid.New()
	sess := s.newFn()

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.evictLocked(now)
	s.entries[key] = &sessionEntry{session: sess, lastSeen: now}
	return key.String(), sess
}

func (s *sessionStore) evictLocked(now time.Time) {
	for k, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, k)
		}
	}
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
