package domain

type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// HasParticipant reports whether email is already on the participant list.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with a.
func (a *Activity) Clone() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)

	clone := *a
	clone.Participants = participants
	return clone
}
