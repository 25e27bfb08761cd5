package models

import "time"

// Notification is a dashboard notification for the current user.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Type      string    `json:"type,omitempty"` // e.g. "BOOKING", "REVIEW", "PAYOUT"
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
