package handler

import (
	"context"
	"errors"
	"net/http"

	"activity-signup-service/internal/domain"
	"activity-signup-service/internal/mapper"
	"activity-signup-service/internal/my_errors"
	"activity-signup-service/internal/observability"

	"github.com/go-playground/validator/v10"
)

type ActivityService interface {
	GetAllActivities(ctx context.Context) ([]domain.Activity, error)
	Signup(ctx context.Context, activityName, email string) error
}

type ActivityHandler struct {
	service   ActivityService
	validator *validator.Validate
}

func NewActivityHandler(service ActivityService, validator *validator.Validate) *ActivityHandler {
	return &ActivityHandler{
		service:   service,
		validator: validator,
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Get every activity keyed by name, with its schedule, capacity and participants
// @Tags Activities
// @Produce json
// @Success 200 {object} response.ActivitiesResponse "Activities retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.GetAllActivities(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, mapper.MapDomainActivitiesToResponse(activities))
}

// Signup godoc
// @Summary Sign up for an activity
// @Description Add an email to the activity's participant list
// @Tags Activities
// @Produce json
// @Param activity_name path string true "Activity name (exact match)"
// @Param email query string true "Participant email"
// @Success 200 {object} response.MessageResponse "Participant signed up"
// @Failure 400 {object} dto.ErrorResponse "Participant already signed up"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 422 {object} dto.ErrorResponse "Email missing"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{activity_name}/signup [post]
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	req := mapper.MapSignupQueryToRequest(pathParam(r, "activityName"), r.URL.Query())

	if err := h.validator.Struct(req); err != nil {
		observability.RecordSignup(req.ActivityName, observability.SignupOutcomeInvalid)
		respondError(w, http.StatusUnprocessableEntity, "email query parameter is required")
		return
	}

	err := h.service.Signup(r.Context(), req.ActivityName, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, my_errors.ErrActivityNotFound):
			respondError(w, http.StatusNotFound, req.ActivityName+" not found")
		case errors.Is(err, my_errors.ErrAlreadySignedUp):
			respondError(w, http.StatusBadRequest, req.Email+" is already signed up for "+req.ActivityName)
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, mapper.MapSignupToResponse(req))
}
