// Package sequencer serializes work per key inside one process. Events for
// the same chat run in arrival order while different chats proceed in
// parallel.
package sequencer

import "sync"

// Sequencer hands out one mutex per key. Idle entries are reference counted
// and dropped once the last holder releases them.
type Sequencer struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New creates an empty Sequencer.
func New() *Sequencer {
	return &Sequencer{locks: make(map[string]*entry)}
}

// Acquire blocks until the caller holds the key's slot and returns the
// release function. Release must be called exactly once.
func (s *Sequencer) Acquire(key string) func() {
	s.mu.Lock()
	e, ok := s.locks[key]
	if !ok {
		e = &entry{}
		s.locks[key] = e
	}
	e.refs++
	s.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			s.mu.Lock()
			e.refs--
			if e.refs <= 0 {
				delete(s.locks, key)
			}
			s.mu.Unlock()
		})
	}
}

// Do runs fn while holding the key's slot.
func (s *Sequencer) Do(key string, fn func()) {
	release := s.Acquire(key)
	defer release()
	fn()
}
