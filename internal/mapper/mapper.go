package mapper

import (
	"net/url"

	"activity-signup-service/internal/domain"
	"activity-signup-service/internal/dto"
	"activity-signup-service/internal/request"
	"activity-signup-service/internal/response"
)

// Activity mappers
func MapDomainActivityToDTO(activity *domain.Activity) dto.ActivityDTO {
	participants := make([]string, len(activity.Participants))
	copy(participants, activity.Participants)
	return dto.ActivityDTO{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func MapDomainActivitiesToResponse(activities []domain.Activity) response.ActivitiesResponse {
	result := make(response.ActivitiesResponse, len(activities))
	for i := range activities {
		result[activities[i].Name] = MapDomainActivityToDTO(&activities[i])
	}
	return result
}

// Signup mappers
func MapSignupQueryToRequest(activityName string, query url.Values) *request.SignupRequest {
	return &request.SignupRequest{
		ActivityName:  activityName,
		Email:         query.Get("email"),
		EmailProvided: query.Has("email"),
	}
}

func MapSignupToResponse(req *request.SignupRequest) response.MessageResponse {
	return response.MessageResponse{
		Message: req.Email + " signed up for " + req.ActivityName,
	}
}
