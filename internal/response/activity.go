package response

import "activity-signup-service/internal/dto"

// ActivitiesResponse is keyed by activity name.
type ActivitiesResponse map[string]dto.ActivityDTO

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
