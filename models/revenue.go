package models

import "time"

// RevenueConfiguration is a named fee policy. At most one configuration is
// active at a time; activation is exclusive and enforced server-side, with
// the client mirroring the flip locally (see revenue.Manager).
type RevenueConfiguration struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	HostServiceFeePercent float64  `json:"hostServiceFeePercent"`
	HostServiceFeeMin     float64  `json:"hostServiceFeeMin,omitempty"`
	HostServiceFeeMax     *float64 `json:"hostServiceFeeMax,omitempty"` // nil means no cap

	GuestServiceFeePercent float64  `json:"guestServiceFeePercent"`
	GuestServiceFeeMin     float64  `json:"guestServiceFeeMin,omitempty"`
	GuestServiceFeeMax     *float64 `json:"guestServiceFeeMax,omitempty"` // nil means no cap

	AppliesToBookings    bool `json:"appliesToBookings"`
	AppliesToWithdrawals bool `json:"appliesToWithdrawals"`
	IsActive             bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// FeeBreakdown is the derived result of running an amount through the active
// revenue configuration. Never persisted; always recomputed fresh.
type FeeBreakdown struct {
	OriginalAmount float64 `json:"originalAmount"`
	Currency       string  `json:"currency,omitempty"`

	HostFeeAmount   float64 `json:"hostFeeAmount"`
	HostFeePercent  float64 `json:"hostFeePercent"`
	GuestFeeAmount  float64 `json:"guestFeeAmount"`
	GuestFeePercent float64 `json:"guestFeePercent"`

	GuestPays       float64 `json:"guestPays"`
	HostReceives    float64 `json:"hostReceives"`
	PlatformRevenue float64 `json:"platformRevenue"`
}
