package models

import "time"

// WalletBalance is the current balance of the user's platform wallet.
type WalletBalance struct {
	Available float64 `json:"available"`
	Pending   float64 `json:"pending"`
	Currency  string  `json:"currency,omitempty"`
}

// WalletTransaction is one ledger entry in the user's wallet history.
type WalletTransaction struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // e.g. "PAYOUT", "BOOKING_INCOME", "REFUND", "WITHDRAWAL"
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency,omitempty"`
	Status    string    `json:"status,omitempty"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// WithdrawalRequest asks the platform to pay out part of the wallet balance.
type WithdrawalRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
	Method   string  `json:"method,omitempty"` // e.g. "BANK_TRANSFER", "PAYPAL"
}
