package entities

import "time"

// Review represents a user review of a service. Reviews are immutable
// after creation except for deletion by their author.
type Review struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"service_id"`
	UserID    string    `json:"user_id"`
	Rating    float64   `json:"rating"` // 0-5 inclusive
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnerID returns the identity that may delete this record
func (r *Review) OwnerID() string {
	return r.UserID
}
