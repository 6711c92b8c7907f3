package types

// Activity is one enrollable extracurricular activity. Activities are keyed
// by name in the roster, so the name is not repeated here.
type Activity struct {
	// Description is a short human-readable summary of the activity.
	Description string `json:"description"`

	// Schedule describes when the activity meets, as free-form text.
	Schedule string `json:"schedule"`

	// MaxParticipants is the advertised capacity. It is informational;
	// signups are not rejected when it is reached.
	MaxParticipants int `json:"max_participants"`

	// Participants is the set of enrolled student emails.
	Participants []string `json:"participants"`
}
