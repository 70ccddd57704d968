package service

import (
	"context"
	"errors"
	"testing"

	"activity-signup-service/internal/domain"
	"activity-signup-service/internal/my_errors"
	"activity-signup-service/internal/observability"
	"activity-signup-service/internal/repository"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct {
	err error
}

func (r *failingRepo) GetAllActivities(ctx context.Context) ([]domain.Activity, error) {
	return nil, r.err
}

func (r *failingRepo) GetActivity(ctx context.Context, name string) (*domain.Activity, error) {
	return nil, r.err
}

func (r *failingRepo) AddParticipant(ctx context.Context, name, email string) error {
	return r.err
}

func newTestService(t *testing.T) *ActivityService {
	t.Helper()
	repo, err := repository.NewActivityRepository(repository.DefaultActivities())
	require.NoError(t, err)
	return NewActivityService(repo)
}

func TestActivityService_GetAllActivities(t *testing.T) {
	svc := newTestService(t)

	activities, err := svc.GetAllActivities(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(activities))
	for _, a := range activities {
		names = append(names, a.Name)
	}
	assert.Contains(t, names, "Chess Club")
}

func TestActivityService_Signup(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.Signup(ctx, "Basketball Team", "test@mergington.edu")
	require.NoError(t, err)

	activities, err := svc.GetAllActivities(ctx)
	require.NoError(t, err)
	for _, a := range activities {
		if a.Name == "Basketball Team" {
			assert.Equal(t, []string{"test@mergington.edu"}, a.Participants)
		}
	}
}

func TestActivityService_SignupErrors(t *testing.T) {
	testCases := []struct {
		name        string
		activity    string
		email       string
		wantErr     error
		wantMessage string
	}{
		{
			name:        "unknown activity",
			activity:    "Nonexistent Activity",
			email:       "test@mergington.edu",
			wantErr:     my_errors.ErrActivityNotFound,
			wantMessage: "Nonexistent Activity",
		},
		{
			name:        "name is case sensitive",
			activity:    "chess club",
			email:       "test@mergington.edu",
			wantErr:     my_errors.ErrActivityNotFound,
			wantMessage: "chess club",
		},
		{
			name:        "already signed up",
			activity:    "Chess Club",
			email:       "michael@mergington.edu",
			wantErr:     my_errors.ErrAlreadySignedUp,
			wantMessage: "michael@mergington.edu for Chess Club",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t)

			err := svc.Signup(context.Background(), tc.activity, tc.email)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), tc.wantMessage)
		})
	}
}

func TestActivityService_SignupKeepsEmailVerbatim(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, email := range []string{"", "   ", " padded@mergington.edu "} {
		require.NoError(t, svc.Signup(ctx, "Gym Class", email))
	}

	activities, err := svc.GetAllActivities(ctx)
	require.NoError(t, err)
	for _, a := range activities {
		if a.Name == "Gym Class" {
			assert.Equal(t, []string{
				"john@mergington.edu",
				"olivia@mergington.edu",
				"",
				"   ",
				" padded@mergington.edu ",
			}, a.Participants)
		}
	}
}

func TestActivityService_SignupTwice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, "Soccer Club", "duplicate@mergington.edu"))
	err := svc.Signup(ctx, "Soccer Club", "duplicate@mergington.edu")
	assert.ErrorIs(t, err, my_errors.ErrAlreadySignedUp)

	activities, err := svc.GetAllActivities(ctx)
	require.NoError(t, err)
	for _, a := range activities {
		if a.Name == "Soccer Club" {
			assert.Len(t, a.Participants, 1)
		}
	}
}

func TestActivityService_SignupRecordsMetrics(t *testing.T) {
	svc := newTestService(t)
	counter := observability.SignupsTotal()

	success := counter.WithLabelValues("Math Club", observability.SignupOutcomeSuccess)
	duplicate := counter.WithLabelValues("Math Club", observability.SignupOutcomeDuplicate)
	successBefore := testutil.ToFloat64(success)
	duplicateBefore := testutil.ToFloat64(duplicate)

	require.NoError(t, svc.Signup(context.Background(), "Math Club", "metrics@mergington.edu"))
	require.Error(t, svc.Signup(context.Background(), "Math Club", "metrics@mergington.edu"))

	assert.Equal(t, successBefore+1, testutil.ToFloat64(success))
	assert.Equal(t, duplicateBefore+1, testutil.ToFloat64(duplicate))
}

func TestActivityService_RepositoryFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := NewActivityService(&failingRepo{err: boom})

	err := svc.Signup(context.Background(), "Chess Club", "test@mergington.edu")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, my_errors.ErrActivityNotFound)

	_, err = svc.GetAllActivities(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestActivityService_FailedSignupDoesNotLabelByName(t *testing.T) {
	svc := NewActivityService(&failingRepo{err: context.DeadlineExceeded})
	counter := observability.SignupsTotal()
	unknown := counter.WithLabelValues("unknown", observability.SignupOutcomeError)
	before := testutil.ToFloat64(unknown)

	err := svc.Signup(context.Background(), "Made Up Club 42", "test@mergington.edu")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Equal(t, before+1, testutil.ToFloat64(unknown))
	assert.Equal(t, 0.0, testutil.ToFloat64(counter.WithLabelValues("Made Up Club 42", observability.SignupOutcomeError)))
}
