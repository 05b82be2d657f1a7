package entities

import "time"

// User represents a user in the system. Username and email are plain
// text; uniqueness is not enforced.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// OwnerID returns the identity that may mutate this record. A user
// record self-identifies: the owner is the record's own id.
func (u *User) OwnerID() string {
	return u.ID
}
