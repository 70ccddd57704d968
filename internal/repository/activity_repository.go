package repository

import (
	"context"
	"fmt"
	"sync"

	"activity-signup-service/internal/domain"
	"activity-signup-service/internal/my_errors"
)

type activityEntry struct {
	mu       sync.Mutex
	activity domain.Activity
}

// ActivityRepository keeps the activity directory in process memory.
// The set of activities is fixed at construction; only participant lists change.
type ActivityRepository struct {
	order   []string
	entries map[string]*activityEntry
}

func NewActivityRepository(seed []domain.Activity) (*ActivityRepository, error) {
	r := &ActivityRepository{
		order:   make([]string, 0, len(seed)),
		entries: make(map[string]*activityEntry, len(seed)),
	}

	for i := range seed {
		a := seed[i].Clone()
		if a.Name == "" {
			return nil, fmt.Errorf("activity #%d name: %w", i, my_errors.ErrEmptyField)
		}
		if a.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q max_participants must be positive: %w", a.Name, my_errors.ErrInvalidInput)
		}
		if _, exists := r.entries[a.Name]; exists {
			return nil, fmt.Errorf("duplicate activity %q: %w", a.Name, my_errors.ErrInvalidInput)
		}

		r.entries[a.Name] = &activityEntry{activity: a}
		r.order = append(r.order, a.Name)
	}

	return r, nil
}

func (r *ActivityRepository) GetAllActivities(ctx context.Context) ([]domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(r.order))
	for _, name := range r.order {
		entry := r.entries[name]
		entry.mu.Lock()
		activities = append(activities, entry.activity.Clone())
		entry.mu.Unlock()
	}

	return activities, nil
}

func (r *ActivityRepository) GetActivity(ctx context.Context, name string) (*domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, ok := r.entries[name]
	if !ok {
		return nil, my_errors.ErrActivityNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	a := entry.activity.Clone()
	return &a, nil
}

// AddParticipant appends email to the activity's participant list.
// The duplicate check and the append happen under the same lock.
// Capacity is not checked.
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry, ok := r.entries[name]
	if !ok {
		return my_errors.ErrActivityNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.activity.HasParticipant(email) {
		return my_errors.ErrAlreadySignedUp
	}

	entry.activity.Participants = append(entry.activity.Participants, email)
	return nil
}
