package models

import "time"

// Enquiry is a message a prospective guest sends about a property, or a
// support request raised from the dashboard.
type Enquiry struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId,omitempty"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Message    string    `json:"message"`
	Status     string    `json:"status,omitempty"` // e.g. "OPEN", "ANSWERED", "CLOSED"
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}
