package models

import "time"

// Favorite links a guest to a property they saved.
type Favorite struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	PropertyID string    `json:"propertyId"`
	Property   *Property `json:"property,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}
