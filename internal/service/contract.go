package service

import (
	"context"

	"activity-signup-service/internal/domain"
)

type ActivityRepository interface {
	GetAllActivities(ctx context.Context) ([]domain.Activity, error)
	GetActivity(ctx context.Context, name string) (*domain.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
}
