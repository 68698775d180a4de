// Package service implements the business operations between HTTP handlers
// and the activity registry.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mergington-high/activities-api/internal/metrics"
	"github.com/mergington-high/activities-api/internal/model"
	"github.com/mergington-high/activities-api/internal/registry"
)

// ActivityService orchestrates signup operations against the registry and
// records the domain metrics.
type ActivityService struct {
	registry *registry.Registry
	log      *zap.Logger
}

// New constructs an ActivityService and initialises the spots-left gauges
// from the seeded catalog.
func New(reg *registry.Registry, log *zap.Logger) *ActivityService {
	s := &ActivityService{registry: reg, log: log}
	for name := range reg.List() {
		s.refreshSpots(name)
	}
	return s
}

// List returns a snapshot of every activity keyed by name.
func (s *ActivityService) List(ctx context.Context) map[string]model.Activity {
	return s.registry.List()
}

// Signup registers email for the named activity and returns the confirmation
// message. The email is taken verbatim: no format validation, no
// normalization, so the confirmation echoes exactly what the student typed.
func (s *ActivityService) Signup(ctx context.Context, name, email string) (string, error) {
	if err := s.registry.Signup(name, email); err != nil {
		metrics.SignupsTotal.WithLabelValues(name, outcome(err)).Inc()
		return "", err
	}
	metrics.SignupsTotal.WithLabelValues(name, "ok").Inc()
	s.refreshSpots(name)

	if spots, ok := s.registry.SpotsLeft(name); ok && spots < 0 {
		// Capacity is advisory only, but an oversubscribed roster is worth
		// surfacing to whoever runs the signups.
		s.log.Warn("activity oversubscribed",
			zap.String("activity", name),
			zap.Int("spots_left", spots),
		)
	}
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity and returns the
// confirmation message.
func (s *ActivityService) Unregister(ctx context.Context, name, email string) (string, error) {
	if err := s.registry.Unregister(name, email); err != nil {
		metrics.UnregistrationsTotal.WithLabelValues(name, outcome(err)).Inc()
		return "", err
	}
	metrics.UnregistrationsTotal.WithLabelValues(name, "ok").Inc()
	s.refreshSpots(name)
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

func (s *ActivityService) refreshSpots(name string) {
	if spots, ok := s.registry.SpotsLeft(name); ok {
		metrics.SpotsLeft.WithLabelValues(name).Set(float64(spots))
	}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, registry.ErrAlreadySignedUp), errors.Is(err, registry.ErrNotRegistered):
		return "conflict"
	default:
		return "error"
	}
}
