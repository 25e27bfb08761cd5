package revenue

import (
	"math"

	"roomfinder/models"
)

// Calculate runs an amount through the active configuration and returns the
// fee breakdown. Pure and local: no upstream call is ever made, and the
// result is never persisted. Fails with ErrNoActiveConfiguration when no
// policy is active.
func (m *Manager) Calculate(amount float64, currency string) (*models.FeeBreakdown, error) {
	active := m.ActiveConfiguration()
	if active == nil {
		return nil, ErrNoActiveConfiguration
	}
	breakdown := ComputeBreakdown(*active, amount, currency)
	return &breakdown, nil
}

// ComputeBreakdown derives the fee split for an amount under a given
// policy. Fees are the policy percentage of the amount, clamped to the
// policy's min and (when set) max caps.
func ComputeBreakdown(cfg models.RevenueConfiguration, amount float64, currency string) models.FeeBreakdown {
	hostFee := clampFee(amount*cfg.HostServiceFeePercent/100, cfg.HostServiceFeeMin, cfg.HostServiceFeeMax)
	guestFee := clampFee(amount*cfg.GuestServiceFeePercent/100, cfg.GuestServiceFeeMin, cfg.GuestServiceFeeMax)

	return models.FeeBreakdown{
		OriginalAmount:  roundCents(amount),
		Currency:        currency,
		HostFeeAmount:   hostFee,
		HostFeePercent:  cfg.HostServiceFeePercent,
		GuestFeeAmount:  guestFee,
		GuestFeePercent: cfg.GuestServiceFeePercent,
		GuestPays:       roundCents(amount + guestFee),
		HostReceives:    roundCents(amount - hostFee),
		PlatformRevenue: roundCents(hostFee + guestFee),
	}
}

func clampFee(fee, min float64, max *float64) float64 {
	if fee < min {
		fee = min
	}
	if max != nil && fee > *max {
		fee = *max
	}
	return roundCents(fee)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
