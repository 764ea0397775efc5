// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package consent implements the age-verification state machine that gates
// rendering of sensitive content across the site. State starts Unknown,
// resolves exactly once from persisted storage, and from then on is either
// Granted or Denied until an explicit grant or revoke.
package consent

import (
	"sync"
)

// State is the tri-state age-verification flag.
type State int

const (
	// Unknown means the persisted flag has not been consulted yet.
	// Consumers must not render gated content while Unknown — it is
	// distinct from Denied so a page can suppress the decision entirely
	// instead of flashing gated content before resolution.
	Unknown State = iota

	// Denied means consent is absent, revoked, or the persisted value
	// was anything other than the granted marker.
	Denied

	// Granted means the visitor explicitly accepted the age gate.
	Granted
)

// String returns a short name for logging and cache keys.
func (s State) String() string {
	switch s {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	default:
		return "unknown"
	}
}

// GrantedMarker is the literal value that marks persisted consent.
// Absence or any other value resolves to Denied, never Unknown.
const GrantedMarker = "true"

// Persistence abstracts the durable flag storage (an HTTP cookie in the
// server, a plain file in tooling, a map in tests).
type Persistence interface {
	// Load returns the stored marker and whether one exists.
	Load() (value string, ok bool)
	// Save stores the marker durably.
	Save(value string) error
	// Clear removes the stored marker.
	Clear() error
}

// Store holds the consent state for one visitor session. A nil or failing
// Persistence degrades to in-memory state for the session — never fatal.
type Store struct {
	mu        sync.Mutex
	state     State
	persist   Persistence
	observers []func(State)
}

// NewStore creates a Store in the Unknown state. Call Resolve before the
// first rendering decision. persist may be nil.
func NewStore(persist Persistence) *Store {
	return &Store{state: Unknown, persist: persist}
}

// Resolve consults persisted storage and settles the state. The stored
// GrantedMarker resolves to Granted; anything else, including absence or
// unavailable storage, resolves to Denied. Idempotent: once resolved, the
// current state is returned unchanged.
func (s *Store) Resolve() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Unknown {
		return s.state
	}

	s.state = Denied
	if s.persist != nil {
		if v, ok := s.persist.Load(); ok && v == GrantedMarker {
			s.state = Granted
		}
	}
	return s.state
}

// Current returns the state without resolving. Before Resolve it is Unknown.
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Grant persists the granted marker and transitions to Granted. The write
// happens before the in-memory update so a reload immediately after sees
// the new state. Persistence errors degrade to in-memory-only consent.
// Idempotent; observers are notified only on an actual transition.
func (s *Store) Grant() {
	s.transition(Granted, func(p Persistence) error {
		return p.Save(GrantedMarker)
	})
}

// Revoke clears the persisted marker and transitions to Denied.
// Idempotent; observers are notified only on an actual transition.
func (s *Store) Revoke() {
	s.transition(Denied, func(p Persistence) error {
		return p.Clear()
	})
}

// Subscribe registers an observer called after every state transition.
// Observers run synchronously under no lock, in registration order.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) transition(to State, write func(Persistence) error) {
	s.mu.Lock()
	if s.state == to {
		s.mu.Unlock()
		return
	}

	// Write-through first. Failure is non-fatal: the session keeps the new
	// state in memory even if the flag could not be persisted.
	if s.persist != nil {
		_ = write(s.persist)
	}

	s.state = to
	observers := make([]func(State), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(to)
	}
}
