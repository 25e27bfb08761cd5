package models

import "time"

// Review is a guest's rating of a property or stay.
type Review struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	BookingID  string    `json:"bookingId,omitempty"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"`
	Rating     float64   `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	Reply      string    `json:"reply,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}
