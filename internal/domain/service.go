// Package domain defines the business logic for the activities service.
package domain

import (
	"context"
	"errors"

	"example.com/activities/internal/observability"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity roster.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrNotSignedUp indicates the email is not on the activity roster.
	ErrNotSignedUp = errors.New("student is not signed up for this activity")
)

// Registry captures the operations of the activity store. Implementations
// must make each call atomic: the existence and membership checks and the
// roster mutation may not interleave with another call on the same activity.
type Registry interface {
	List(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}

// Service orchestrates signup workflows.
type Service struct {
	registry Registry
}

// NewService constructs a Service.
func NewService(registry Registry) *Service {
	return &Service{registry: registry}
}

// ListActivities returns every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.registry.List(ctx)
}

// Signup adds email to the named activity's roster. Capacity is advisory:
// a signup past max_participants still succeeds.
func (s *Service) Signup(ctx context.Context, activityName, email string) error {
	if err := s.registry.Signup(ctx, activityName, email); err != nil {
		observability.RecordSignup(activityName, false)
		return err
	}
	observability.RecordSignup(activityName, true)
	return nil
}

// Unregister removes email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, activityName, email string) error {
	if err := s.registry.Unregister(ctx, activityName, email); err != nil {
		observability.RecordUnregister(activityName, false)
		return err
	}
	observability.RecordUnregister(activityName, true)
	return nil
}
