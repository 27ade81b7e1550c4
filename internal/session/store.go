package session

import (
	"sync"
	"time"

	"github.com/nikfrants/biketransfer/internal/domain"
)

// Store keeps one live session per user in memory. Cross-user access is
// independent; mutations for the same user are serialized by the
// per-user lock handed out by Lock.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*domain.Session
	locks    map[int64]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*domain.Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Lock acquires the per-user mutex and returns its unlock func. Two
// inbound events for the same user (a double-tap) must not interleave
// into a corrupted session.
func (s *Store) Lock(userID int64) func() {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Get returns the user's session, or nil if none exists.
func (s *Store) Get(userID int64) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[userID]
}

// GetOrCreate returns the user's session, creating an empty one at the
// entry state on first contact.
func (s *Store) GetOrCreate(userID, chatID int64) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	sess := domain.NewSession(userID, chatID)
	s.sessions[userID] = sess
	return sess
}

// Touch records activity so the idle sweep keeps the session alive.
func (s *Store) Touch(sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.UpdatedAt = time.Now().UTC()
}

// Clear destroys the user's session. Session lifecycle is always
// explicit: completion, cancellation or reset, never garbage.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// CleanupIdle drops sessions without activity for longer than ttl and
// returns the ids of the dropped users. A session whose per-user lock
// is held is mid-transition and is skipped until the next sweep. Lock
// entries are never removed: evicting one while a handler holds it
// would hand a second mutex to the same user.
func (s *Store) CleanupIdle(ttl time.Duration) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-ttl)
	var dropped []int64
	for id, sess := range s.sessions {
		if !sess.UpdatedAt.Before(cutoff) {
			continue
		}
		if l, ok := s.locks[id]; ok {
			if !l.TryLock() {
				continue
			}
			l.Unlock()
		}
		delete(s.sessions, id)
		dropped = append(dropped, id)
	}
	return dropped
}
