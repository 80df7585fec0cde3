package entity

import "time"

// Feedback is a user-submitted note about the dashboard. Held in memory
// only; accepted unconditionally.
type Feedback struct {
	Id        string    `json:"id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Feature   string    `json:"feature"`
	CreatedAt time.Time `json:"created_at"`
}
