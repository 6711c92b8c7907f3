package store

import (
	"context"
	"slices"
	"sync"

	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/types"
)

// ActivityRepository holds the activity roster in memory, keyed by activity
// name. Like the user store it is volatile and mutex-guarded; the repository
// starts out seeded with the school's catalog.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]types.Activity
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{activities: seedActivities()}
}

// List returns a snapshot of the roster. Participant slices are copied so
// callers cannot mutate the store through the result.
func (r *ActivityRepository) List(ctx context.Context) (map[string]types.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]types.Activity, len(r.activities))
	for name, activity := range r.activities {
		activity.Participants = slices.Clone(activity.Participants)
		snapshot[name] = activity
	}
	return snapshot, nil
}

// AddParticipant enrolls email in the named activity. Capacity is not
// checked; max_participants is informational.
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return ErrNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return ErrAlreadySignedUp
	}
	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	return nil
}

// RemoveParticipant withdraws email from the named activity.
func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return ErrNotFound
	}
	index := slices.Index(activity.Participants, email)
	if index < 0 {
		return ErrNotSignedUp
	}
	activity.Participants = slices.Delete(activity.Participants, index, index+1)
	r.activities[name] = activity
	return nil
}
