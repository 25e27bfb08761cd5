package models

import "time"

// Property represents a rental listing as served by the upstream API.
type Property struct {
	ID            string    `json:"id"`
	HostID        string    `json:"hostId"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	City          string    `json:"city,omitempty"`
	Country       string    `json:"country,omitempty"`
	PricePerNight float64   `json:"pricePerNight"`
	Currency      string    `json:"currency,omitempty"`
	Bedrooms      int       `json:"bedrooms,omitempty"`
	Bathrooms     int       `json:"bathrooms,omitempty"`
	MaxGuests     int       `json:"maxGuests,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	ReviewCount   int       `json:"reviewCount,omitempty"`
	Status        string    `json:"status,omitempty"` // e.g. "ACTIVE", "PAUSED", "PENDING_REVIEW"
	Images        []string  `json:"images,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}
