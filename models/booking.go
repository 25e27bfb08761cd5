package models

import "time"

// Booking represents a reservation of a property.
type Booking struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"propertyId"`
	PropertyName string    `json:"propertyName,omitempty"`
	GuestID      string    `json:"guestId"`
	GuestName    string    `json:"guestName,omitempty"`
	HostID       string    `json:"hostId,omitempty"`
	CheckIn      string    `json:"checkIn"`  // "YYYY-MM-DD"
	CheckOut     string    `json:"checkOut"` // "YYYY-MM-DD"
	Guests       int       `json:"guests,omitempty"`
	TotalPrice   float64   `json:"totalPrice"`
	Currency     string    `json:"currency,omitempty"`
	Status       string    `json:"status"` // e.g. "PENDING", "CONFIRMED", "CANCELLED", "COMPLETED"
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}
