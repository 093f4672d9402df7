package registry

import "example.com/activities/internal/domain"

// seedActivities is the fixed dataset loaded at startup. Participant slices
// are copied on Reset, never handed out directly.
var seedActivities = map[string]domain.Activity{
	"Chess Club": {
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	"Programming Class": {
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	"Gym Class": {
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
	"Basketball Team": {
		Description:     "Competitive basketball team for all skill levels",
		Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 15,
		Participants:    []string{"james@mergington.edu"},
	},
	"Tennis Club": {
		Description:     "Tennis training and friendly matches",
		Schedule:        "Tuesdays and Saturdays, 3:00 PM - 4:30 PM",
		MaxParticipants: 16,
		Participants:    []string{"alex@mergington.edu"},
	},
	"Drama Club": {
		Description:     "Acting, theater production, and performance art",
		Schedule:        "Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 25,
		Participants:    []string{"grace@mergington.edu", "liam@mergington.edu"},
	},
	"Art Studio": {
		Description:     "Painting, drawing, and creative visual arts",
		Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 18,
		Participants:    []string{"isabella@mergington.edu"},
	},
	"Debate Team": {
		Description:     "Develop critical thinking and public speaking skills",
		Schedule:        "Mondays and Fridays, 3:30 PM - 4:30 PM",
		MaxParticipants: 14,
		Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
	},
	"Science Club": {
		Description:     "Explore science experiments and research projects",
		Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 20,
		Participants:    []string{"noah@mergington.edu"},
	},
}
