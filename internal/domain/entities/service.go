package entities

import "time"

// Service represents a bookable service offered on the marketplace
type Service struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Provider    string     `json:"provider"`
	Date        string     `json:"date"` // ISO 8601 so lexicographic range filters behave chronologically
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// OwnerID returns the identity that may mutate this record
func (s *Service) OwnerID() string {
	return s.Provider
}
