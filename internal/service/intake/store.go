package intake

import (
	"sync"
	"time"

	"github.com/oakfieldhealth/reception/backend/internal/model/intake"
)

// Store owns every live intake session. A global mutex guards the map while
// each entry carries its own lock, held for the full duration of one turn,
// so turns for one identifier are linearizable and distinct identifiers
// proceed without contention. Only the Service mutates sessions.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	gone    bool
	session intake.Session
}

// NewStore bootstraps the in-memory session store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// checkout returns the entry for id with its lock held, creating a fresh
// session on first use. An entry that was removed while the caller waited on
// its lock is discarded and re-created, so a completed identifier starts
// over with an empty session.
func (s *Store) checkout(id string) *entry {
	for {
		s.mu.Lock()
		e, ok := s.entries[id]
		if !ok {
			e = &entry{session: intake.Session{ID: id, CreatedAt: time.Now().UTC()}}
			s.entries[id] = e
		}
		s.mu.Unlock()

		e.mu.Lock()
		if !e.gone {
			return e
		}
		e.mu.Unlock()
	}
}

// remove drops a session from the store. The caller must still hold the
// entry lock; waiters blocked on it observe the gone flag and re-checkout.
func (s *Store) remove(id string, e *entry) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	e.gone = true
}

// peek returns a copy of a live session without creating one.
func (s *Store) peek(id string) (intake.Session, bool) {
	s.mu.Lock()
	e, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return intake.Session{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return intake.Session{}, false
	}
	return e.session, true
}

// Len reports how many sessions are currently live.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
