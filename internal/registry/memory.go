// Package registry holds the in-memory activity store.
package registry

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// InMemoryRegistry stores activities in process memory, keyed by name.
// Rosters keep signup order. Every operation takes the lock for its full
// check-then-mutate sequence, so concurrent signups cannot produce a
// duplicate roster entry.
type InMemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewInMemoryRegistry constructs a registry populated with the seed dataset.
func NewInMemoryRegistry() *InMemoryRegistry {
	r := &InMemoryRegistry{}
	r.Reset()
	return r
}

// Reset restores the registry to its seed state. Only test scaffolding calls
// this; the running service never re-seeds.
func (r *InMemoryRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = make(map[string]*domain.Activity, len(seedActivities))
	for name, activity := range seedActivities {
		record := activity
		record.Participants = append([]string(nil), activity.Participants...)
		r.activities[name] = &record
		observability.SetRosterSize(name, len(record.Participants))
	}
}

// List returns a copy of every activity keyed by name.
func (r *InMemoryRegistry) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		record := *activity
		record.Participants = append([]string(nil), activity.Participants...)
		out[name] = record
	}
	return out, nil
}

// Signup appends email to the named activity's roster.
func (r *InMemoryRegistry) Signup(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if activity.Registered(email) {
		return domain.ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	observability.SetRosterSize(activityName, len(activity.Participants))
	return nil
}

// Unregister removes email from the named activity's roster.
func (r *InMemoryRegistry) Unregister(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if !activity.Registered(email) {
		return domain.ErrNotSignedUp
	}

	kept := make([]string, 0, len(activity.Participants)-1)
	for _, participant := range activity.Participants {
		if participant != email {
			kept = append(kept, participant)
		}
	}
	activity.Participants = kept
	observability.SetRosterSize(activityName, len(activity.Participants))
	return nil
}
