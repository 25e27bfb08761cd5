package revenue

import (
	"testing"

	"roomfinder/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestComputeBreakdownWithCaps(t *testing.T) {
	cfg := models.RevenueConfiguration{
		HostServiceFeePercent:  3,
		HostServiceFeeMin:      5,
		HostServiceFeeMax:      floatPtr(20),
		GuestServiceFeePercent: 10,
	}

	b := ComputeBreakdown(cfg, 1000, "EUR")

	// 3% of 1000 is 30, capped at 20; 10% of 1000 is 100, no cap.
	assert.Equal(t, 20.0, b.HostFeeAmount)
	assert.Equal(t, 100.0, b.GuestFeeAmount)
	assert.Equal(t, 1100.0, b.GuestPays)
	assert.Equal(t, 980.0, b.HostReceives)
	assert.Equal(t, 120.0, b.PlatformRevenue)
	assert.Equal(t, "EUR", b.Currency)
}

func TestComputeBreakdownMinimumFloor(t *testing.T) {
	cfg := models.RevenueConfiguration{
		HostServiceFeePercent:  3,
		HostServiceFeeMin:      5,
		GuestServiceFeePercent: 10,
		GuestServiceFeeMin:     2,
	}

	// 3% of 50 is 1.50, lifted to the 5 minimum.
	b := ComputeBreakdown(cfg, 50, "EUR")

	assert.Equal(t, 5.0, b.HostFeeAmount)
	assert.Equal(t, 5.0, b.GuestFeeAmount)
	assert.Equal(t, 45.0, b.HostReceives)
	assert.Equal(t, 55.0, b.GuestPays)
}

func TestComputeBreakdownNilCapMeansUncapped(t *testing.T) {
	cfg := models.RevenueConfiguration{
		HostServiceFeePercent:  3,
		GuestServiceFeePercent: 10,
	}

	b := ComputeBreakdown(cfg, 100000, "EUR")

	assert.Equal(t, 3000.0, b.HostFeeAmount)
	assert.Equal(t, 10000.0, b.GuestFeeAmount)
}

func TestComputeBreakdownRoundsToCents(t *testing.T) {
	cfg := models.RevenueConfiguration{
		HostServiceFeePercent:  3.33,
		GuestServiceFeePercent: 7.77,
	}

	b := ComputeBreakdown(cfg, 99.99, "EUR")

	// 3.33% of 99.99 = 3.329667, 7.77% of 99.99 = 7.769223.
	assert.Equal(t, 3.33, b.HostFeeAmount)
	assert.Equal(t, 7.77, b.GuestFeeAmount)
	assert.Equal(t, 107.76, b.GuestPays)
	assert.Equal(t, 96.66, b.HostReceives)
	assert.Equal(t, 11.1, b.PlatformRevenue)
}

func TestCalculateUsesActiveConfiguration(t *testing.T) {
	m := NewManager(nil, nil)
	m.configs = []models.RevenueConfiguration{
		{ID: "cfg-a", HostServiceFeePercent: 5, GuestServiceFeePercent: 8, IsActive: false},
		{ID: "cfg-b", HostServiceFeePercent: 3, GuestServiceFeePercent: 10, IsActive: true},
	}

	b, err := m.Calculate(200, "EUR")

	require.NoError(t, err)
	assert.Equal(t, 6.0, b.HostFeeAmount)
	assert.Equal(t, 20.0, b.GuestFeeAmount)
}
