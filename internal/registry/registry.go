// Package registry implements the in-memory activity store. It plays the role
// a database-backed repository would in a larger service: it owns all shared
// mutable state and exposes the domain errors handlers map to HTTP statuses.
package registry

import (
	"errors"
	"slices"
	"sync"

	"github.com/mergington-high/activities-api/internal/model"
)

// ErrActivityNotFound is returned when the named activity does not exist.
var ErrActivityNotFound = errors.New("activity not found")

// ErrAlreadySignedUp is returned when the same email signs up twice.
var ErrAlreadySignedUp = errors.New("student is already signed up")

// ErrNotRegistered is returned when unregistering an email that is not on the
// roster.
var ErrNotRegistered = errors.New("student is not registered for this activity")

// Registry stores activities keyed by name. All access goes through the mutex:
// handlers run on concurrent goroutines and signup/unregister are
// read-modify-write operations on the rosters.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// New constructs a Registry from seed data. The seed is deep-copied so callers
// cannot mutate the registry behind its lock.
func New(seed map[string]model.Activity) *Registry {
	activities := make(map[string]*model.Activity, len(seed))
	for name, a := range seed {
		a := a
		a.Participants = slices.Clone(a.Participants)
		activities[name] = &a
	}
	return &Registry{activities: activities}
}

// List returns a snapshot of every activity keyed by name. The snapshot is a
// deep copy; mutating it does not affect the registry.
func (r *Registry) List() map[string]model.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]model.Activity, len(r.activities))
	for name, a := range r.activities {
		copied := *a
		copied.Participants = slices.Clone(a.Participants)
		out[name] = copied
	}
	return out
}

// Signup appends email to the named activity's roster, preserving signup
// order. Capacity is not enforced; see DESIGN.md.
func (r *Registry) Signup(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if slices.Contains(a.Participants, email) {
		return ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the named activity's roster. The order of the
// remaining participants is preserved.
func (r *Registry) Unregister(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return ErrNotRegistered
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return nil
}

// SpotsLeft reports the remaining capacity of the named activity. The second
// return value is false when the activity does not exist.
func (r *Registry) SpotsLeft(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return 0, false
	}
	return a.SpotsLeft(), true
}
