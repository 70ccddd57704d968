package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"activity-signup-service/internal/domain"
	"activity-signup-service/internal/my_errors"
	"activity-signup-service/internal/observability"
)

type ActivityService struct {
	activityRepo ActivityRepository
}

func NewActivityService(activityRepo ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

func (s *ActivityService) GetAllActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.activityRepo.GetAllActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all activities: %w", err)
	}
	return activities, nil
}

// Signup registers email for the named activity. The name and email are used verbatim.
// Signing up past max_participants is allowed.
func (s *ActivityService) Signup(ctx context.Context, activityName, email string) error {
	if err := s.activityRepo.AddParticipant(ctx, activityName, email); err != nil {
		switch {
		case errors.Is(err, my_errors.ErrActivityNotFound):
			observability.RecordSignup(activityName, observability.SignupOutcomeNotFound)
			return fmt.Errorf("%s: %w", activityName, err)
		case errors.Is(err, my_errors.ErrAlreadySignedUp):
			observability.RecordSignup(activityName, observability.SignupOutcomeDuplicate)
			return fmt.Errorf("%s for %s: %w", email, activityName, err)
		default:
			observability.RecordSignup(activityName, observability.SignupOutcomeError)
			return fmt.Errorf("failed to add participant: %w", err)
		}
	}

	observability.RecordSignup(activityName, observability.SignupOutcomeSuccess)

	if activity, err := s.activityRepo.GetActivity(ctx, activityName); err == nil &&
		len(activity.Participants) > activity.MaxParticipants {
		slog.Warn("activity over capacity",
			slog.String("activity", activityName),
			slog.Int("participants", len(activity.Participants)),
			slog.Int("max_participants", activity.MaxParticipants),
		)
	}

	slog.Info("participant signed up",
		slog.String("activity", activityName),
		slog.String("email", email),
	)

	return nil
}
