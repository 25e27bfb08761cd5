package revenue

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"roomfinder/apiclient"
	"roomfinder/models"
	"roomfinder/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRevenueUpstream serves the admin fee-policy endpoints.
type fakeRevenueUpstream struct {
	mu        sync.Mutex
	hits      int
	lastBody  []byte
	lastPath  string
	lastVerb  string
	activated string
}

func (f *fakeRevenueUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.hits++
	f.lastBody = body
	f.lastPath = r.URL.Path
	f.lastVerb = r.Method
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/admin/revenue-configs":
		w.Write([]byte(`{"success": true, "data": {"configurations": [
			{"id": "cfg-a", "name": "Standard", "description": "Default split", "hostServiceFeePercent": 3, "guestServiceFeePercent": 10, "isActive": true},
			{"id": "cfg-b", "name": "Promo", "description": "Launch promo", "hostServiceFeePercent": 1, "guestServiceFeePercent": 5, "isActive": false}]}}`))
	case r.Method == http.MethodPost && r.URL.Path == "/admin/revenue-configs":
		w.Write([]byte(`{"success": true, "data": {"id": "cfg-c", "name": "Winter", "description": "Seasonal", "isActive": false}}`))
	case r.Method == http.MethodPut:
		f.mu.Lock()
		f.activated = r.URL.Path
		f.mu.Unlock()
		w.Write([]byte(`{"success": true, "message": "activated"}`))
	case r.Method == http.MethodPatch:
		w.Write([]byte(`{"success": true, "data": {"id": "cfg-b", "name": "Promo", "description": "Launch promo", "hostServiceFeePercent": 2, "guestServiceFeePercent": 5, "isActive": false}}`))
	case r.Method == http.MethodDelete:
		w.Write([]byte(`{"success": true, "message": "deleted"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "not found"}`))
	}
}

func configInput(name, description string) models.RevenueConfiguration {
	return models.RevenueConfiguration{
		Name:                   name,
		Description:            description,
		HostServiceFeePercent:  3,
		GuestServiceFeePercent: 10,
		AppliesToBookings:      true,
	}
}

func newTestManager(t *testing.T, upstream *fakeRevenueUpstream) *Manager {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	api := apiclient.New(srv.URL, session.NewMemoryStore(), srv.Client(), nil)
	return NewManager(api, nil)
}

func TestActivateFlipsExactlyOneConfig(t *testing.T) {
	upstream := &fakeRevenueUpstream{}
	m := newTestManager(t, upstream)
	require.NoError(t, m.Refresh(context.Background()))

	require.NoError(t, m.Activate(context.Background(), "cfg-b"))

	var active []string
	for _, cfg := range m.Configurations() {
		if cfg.IsActive {
			active = append(active, cfg.ID)
		}
	}
	assert.Equal(t, []string{"cfg-b"}, active)
	assert.Equal(t, "/admin/revenue-configs/cfg-b/activate", upstream.activated)
}

func TestCreateValidatesBeforeUpstreamCall(t *testing.T) {
	upstream := &fakeRevenueUpstream{}
	m := newTestManager(t, upstream)

	_, err := m.Create(context.Background(), configInput("", "Some description"))
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = m.Create(context.Background(), configInput("Winter", "   "))
	assert.ErrorIs(t, err, ErrDescriptionRequired)

	upstream.mu.Lock()
	defer upstream.mu.Unlock()
	assert.Zero(t, upstream.hits)
}

func TestCreateForcesInactive(t *testing.T) {
	upstream := &fakeRevenueUpstream{}
	m := newTestManager(t, upstream)

	input := configInput("Winter", "Seasonal")
	input.IsActive = true
	created, err := m.Create(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, created.IsActive)

	// The request body itself must carry isActive=false.
	var sent map[string]any
	require.NoError(t, json.Unmarshal(upstream.lastBody, &sent))
	assert.Equal(t, false, sent["isActive"])
}

func TestUpdateEmitsExplicitNullForClearedCap(t *testing.T) {
	upstream := &fakeRevenueUpstream{}
	m := newTestManager(t, upstream)
	require.NoError(t, m.Refresh(context.Background()))

	pct := 2.0
	_, err := m.Update(context.Background(), "cfg-b", UpdatePatch{
		HostServiceFeePercent:  &pct,
		ClearHostServiceFeeMax: true,
	})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(upstream.lastBody, &sent))
	// Cleared cap: present and explicitly null.
	raw, present := sent["hostServiceFeeMax"]
	assert.True(t, present)
	assert.Nil(t, raw)
	// Untouched cap: absent entirely.
	_, present = sent["guestServiceFeeMax"]
	assert.False(t, present)
	assert.Equal(t, 2.0, sent["hostServiceFeePercent"])
}

func TestCalculateRefusedWithoutActiveConfig(t *testing.T) {
	upstream := &fakeRevenueUpstream{}
	m := newTestManager(t, upstream)
	// Cache deliberately left empty: no active configuration.

	_, err := m.Calculate(500, "EUR")

	assert.ErrorIs(t, err, ErrNoActiveConfiguration)
	upstream.mu.Lock()
	defer upstream.mu.Unlock()
	assert.Zero(t, upstream.hits)
}

func TestDeleteRemovesFromCache(t *testing.T) {
	upstream := &fakeRevenueUpstream{}
	m := newTestManager(t, upstream)
	require.NoError(t, m.Refresh(context.Background()))

	require.NoError(t, m.Delete(context.Background(), "cfg-a"))

	configs := m.Configurations()
	require.Len(t, configs, 1)
	assert.Equal(t, "cfg-b", configs[0].ID)
}
