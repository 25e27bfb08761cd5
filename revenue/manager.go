// Package revenue manages the platform's named fee policies and computes
// fee breakdowns against the single active policy.
package revenue

import (
	"context"
	"errors"
	"strings"
	"sync"

	"roomfinder/apiclient"
	"roomfinder/models"

	"go.uber.org/zap"
)

var (
	// ErrNoActiveConfiguration guards the calculator: it cannot run, and
	// must not call upstream, while no policy is active.
	ErrNoActiveConfiguration = errors.New("revenue: no active configuration")
	// ErrNameRequired and ErrDescriptionRequired reject creates before the
	// upstream call is made.
	ErrNameRequired        = errors.New("revenue: configuration name is required")
	ErrDescriptionRequired = errors.New("revenue: configuration description is required")
)

// Manager caches the fee policies and mirrors the server's
// exclusive-activation invariant locally: at most one cached policy is
// active at any time.
type Manager struct {
	api    *apiclient.Client
	logger *zap.Logger

	mu      sync.Mutex
	configs []models.RevenueConfiguration
}

func NewManager(api *apiclient.Client, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{api: api, logger: logger}
}

// Refresh replaces the cached policy list from upstream.
func (m *Manager) Refresh(ctx context.Context) error {
	configs, err := m.api.RevenueConfigurations(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.configs = configs
	m.mu.Unlock()
	return nil
}

// Configurations returns a copy of the cached policy list.
func (m *Manager) Configurations() []models.RevenueConfiguration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.RevenueConfiguration, len(m.configs))
	copy(out, m.configs)
	return out
}

// ActiveConfiguration returns a copy of the active policy, or nil.
func (m *Manager) ActiveConfiguration() *models.RevenueConfiguration {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.configs {
		if m.configs[i].IsActive {
			cfg := m.configs[i]
			return &cfg
		}
	}
	return nil
}

// Create validates and creates a new policy. New policies always start
// inactive regardless of what the input carries.
func (m *Manager) Create(ctx context.Context, cfg models.RevenueConfiguration) (*models.RevenueConfiguration, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(cfg.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	cfg.IsActive = false

	created, err := m.api.CreateRevenueConfiguration(ctx, cfg)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.configs = append(m.configs, *created)
	m.mu.Unlock()
	return created, nil
}

// Activate makes the given policy the single active one. On success the
// cached list is flipped locally so callers see the exclusive-activation
// invariant immediately, without waiting for a full refetch.
func (m *Manager) Activate(ctx context.Context, id string) error {
	if err := m.api.ActivateRevenueConfiguration(ctx, id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.configs {
		m.configs[i].IsActive = m.configs[i].ID == id
	}
	return nil
}

// Update applies a partial update and refreshes the cached entry.
func (m *Manager) Update(ctx context.Context, id string, patch UpdatePatch) (*models.RevenueConfiguration, error) {
	updated, err := m.api.UpdateRevenueConfiguration(ctx, id, patch.payload())
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.configs {
		if m.configs[i].ID == id {
			m.configs[i] = *updated
			break
		}
	}
	return updated, nil
}

// Delete removes a policy upstream and from the cache.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.api.DeleteRevenueConfiguration(ctx, id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.configs[:0]
	for _, cfg := range m.configs {
		if cfg.ID != id {
			kept = append(kept, cfg)
		}
	}
	m.configs = kept
	return nil
}

// UpdatePatch is a partial update to a policy. Nil pointer fields are
// omitted from the request; the Clear flags emit an explicit JSON null to
// distinguish "no limit" from "unspecified".
type UpdatePatch struct {
	Name        *string
	Description *string

	HostServiceFeePercent  *float64
	HostServiceFeeMin      *float64
	HostServiceFeeMax      *float64
	ClearHostServiceFeeMax bool

	GuestServiceFeePercent  *float64
	GuestServiceFeeMin      *float64
	GuestServiceFeeMax      *float64
	ClearGuestServiceFeeMax bool

	AppliesToBookings    *bool
	AppliesToWithdrawals *bool
}

func (p UpdatePatch) payload() map[string]any {
	out := map[string]any{}
	if p.Name != nil {
		out["name"] = *p.Name
	}
	if p.Description != nil {
		out["description"] = *p.Description
	}
	if p.HostServiceFeePercent != nil {
		out["hostServiceFeePercent"] = *p.HostServiceFeePercent
	}
	if p.HostServiceFeeMin != nil {
		out["hostServiceFeeMin"] = *p.HostServiceFeeMin
	}
	switch {
	case p.ClearHostServiceFeeMax:
		out["hostServiceFeeMax"] = nil
	case p.HostServiceFeeMax != nil:
		out["hostServiceFeeMax"] = *p.HostServiceFeeMax
	}
	if p.GuestServiceFeePercent != nil {
		out["guestServiceFeePercent"] = *p.GuestServiceFeePercent
	}
	if p.GuestServiceFeeMin != nil {
		out["guestServiceFeeMin"] = *p.GuestServiceFeeMin
	}
	switch {
	case p.ClearGuestServiceFeeMax:
		out["guestServiceFeeMax"] = nil
	case p.GuestServiceFeeMax != nil:
		out["guestServiceFeeMax"] = *p.GuestServiceFeeMax
	}
	if p.AppliesToBookings != nil {
		out["appliesToBookings"] = *p.AppliesToBookings
	}
	if p.AppliesToWithdrawals != nil {
		out["appliesToWithdrawals"] = *p.AppliesToWithdrawals
	}
	return out
}
