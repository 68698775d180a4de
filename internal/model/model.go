// Package model defines the core domain types for the activity signup API.
package model

// Activity represents an extracurricular offering with a fixed capacity and a
// roster of signed-up students. Participants are stored in signup order.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the number of open spots. It can go negative: capacity is
// advisory and signup does not enforce it.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// MessageResponse is the success envelope for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
