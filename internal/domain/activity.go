package domain

// Activity describes one extracurricular offering. The activity name acts as
// the primary key and is held by the registry, not on the record itself.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Registered reports whether email is already on the roster.
func (a Activity) Registered(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}
