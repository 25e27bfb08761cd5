package dashboard

import (
	"context"
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

// fakeUpstream imitates the remote API with one envelope shape per feed,
// mirroring the shape mix the real backend produces.
type fakeUpstream struct {
	mu           sync.Mutex
	hits         map[string]int
	failBookings bool
	failReviews  bool
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{hits: map[string]int{}}
}

func (f *fakeUpstream) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.URL.Path]++
	failBookings, failReviews := f.failBookings, f.failReviews
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/host/properties":
		w.Write([]byte(`{"success": true, "data": {
			"properties": [{"id": "p1", "title": "Canal loft"}],
			"pagination": {"page": 1, "pages": 2, "total": 12, "limit": 10}}}`))
	case "/host/bookings", "/bookings":
		if failBookings {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "Bookings backend down"}`))
			return
		}
		w.Write([]byte(`{"message": "ok",
			"bookings": [
				{"id": "b1", "status": "CONFIRMED", "totalPrice": 480},
				{"id": "b2", "status": "PENDING", "totalPrice": 120}],
			"pagination": {"page": 1, "pages": 5, "total": 42, "limit": 10}}`))
	case "/host/reviews":
		if failReviews {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "Reviews backend down"}`))
			return
		}
		w.Write([]byte(`{"data": {
			"reviews": [
				{"id": "r1", "rating": 4},
				{"id": "r2", "rating": 5}],
			"pagination": {"page": 1, "pages": 1, "total": 2, "limit": 10}}}`))
	case "/enquiries":
		w.Write([]byte(`{"success": true, "data": {
			"enquiries": [{"id": "e1", "message": "Is the loft available in May?", "status": "OPEN"}],
			"pagination": {"page": 1, "pages": 1, "total": 1, "limit": 10}}}`))
	case "/favorites":
		w.Write([]byte(`{"success": true, "data": {
			"favorites": [{"id": "f1", "propertyId": "p9"}],
			"pagination": {"page": 1, "pages": 1, "total": 1, "limit": 10}}}`))
	case "/notifications":
		w.Write([]byte(`{"success": true, "data": {
			"notifications": [{"id": "n1", "title": "New booking", "read": false}],
			"pagination": {"page": 1, "pages": 1, "total": 1, "limit": 10}}}`))
	case "/notifications/unread-count":
		w.Write([]byte(`{"count": 7}`))
	case "/wallet/transactions":
		w.Write([]byte(`{"success": true, "data": {
			"transactions": [{"id": "t1", "type": "PAYOUT", "amount": 250}],
			"pagination": {"page": 1, "pages": 1, "total": 1, "limit": 10}}}`))
	case "/wallet/balance":
		w.Write([]byte(`{"data": {"available": 100.5, "pending": 20, "currency": "EUR"}}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "not found"}`))
	}
}

func approvedHost() *models.User {
	return &models.User{ID: "u1", Role: models.RoleHost, ApprovalStatus: models.ApprovalApproved}
}

func newTestController(t *testing.T, upstream *fakeUpstream, user *models.User) *Controller {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	api := apiclient.New(srv.URL, session.NewMemoryStore(), srv.Client(), nil)
	return NewController(api, user, 10, nil)
}

func TestLoadAllPopulatesFeedsAndStats(t *testing.T) {
	upstream := newFakeUpstream()
	ctrl := newTestController(t, upstream, approvedHost())

	ctrl.LoadAll(context.Background())

	assert.Len(t, ctrl.Properties().Items, 1)
	assert.Len(t, ctrl.Bookings().Items, 2)
	assert.Len(t, ctrl.Reviews().Items, 2)
	assert.Len(t, ctrl.Enquiries().Items, 1)
	assert.Len(t, ctrl.Favorites().Items, 1)
	assert.Len(t, ctrl.Notifications().Items, 1)
	assert.Len(t, ctrl.Transactions().Items, 1)

	stats := ctrl.Stats()
	assert.Equal(t, 12, stats.TotalProperties)
	assert.Equal(t, 42, stats.TotalBookings)
	assert.Equal(t, 7, stats.UnreadNotifications)
	assert.InDelta(t, 4.5, stats.AverageRating, 0.001)
	assert.InDelta(t, 120.5, stats.TotalEarnings, 0.001)
}

func TestLoadAllIsolatesFeedFailures(t *testing.T) {
	upstream := newFakeUpstream()
	upstream.failReviews = true
	ctrl := newTestController(t, upstream, approvedHost())

	ctrl.LoadAll(context.Background())

	// The failing feed records its error; every sibling still loads.
	assert.Equal(t, "Reviews backend down", ctrl.Reviews().Err)
	assert.Empty(t, ctrl.Reviews().Items)
	assert.Len(t, ctrl.Bookings().Items, 2)
	assert.Len(t, ctrl.Properties().Items, 1)
	assert.Empty(t, ctrl.Bookings().Err)
}

func TestFetchBookingsIdempotent(t *testing.T) {
	upstream := newFakeUpstream()
	ctrl := newTestController(t, upstream, approvedHost())

	require.NoError(t, ctrl.FetchBookings(context.Background(), 1, ""))
	first := ctrl.Bookings()
	require.NoError(t, ctrl.FetchBookings(context.Background(), 1, ""))
	second := ctrl.Bookings()

	assert.Equal(t, first, second)
}

func TestFetchBookingsStaleWhileError(t *testing.T) {
	upstream := newFakeUpstream()
	ctrl := newTestController(t, upstream, approvedHost())

	require.NoError(t, ctrl.FetchBookings(context.Background(), 1, ""))
	require.Len(t, ctrl.Bookings().Items, 2)

	upstream.mu.Lock()
	upstream.failBookings = true
	upstream.mu.Unlock()

	err := ctrl.FetchBookings(context.Background(), 1, "")
	require.Error(t, err)

	// Last-known-good items survive; the error banner is set.
	feed := ctrl.Bookings()
	assert.Equal(t, "Bookings backend down", feed.Err)
	assert.Len(t, feed.Items, 2)
}

func TestHostGateShortCircuitsWithoutNetworkCall(t *testing.T) {
	upstream := newFakeUpstream()
	pendingHost := &models.User{ID: "u2", Role: models.RoleHost, ApprovalStatus: models.ApprovalPending}
	ctrl := newTestController(t, upstream, pendingHost)

	err := ctrl.FetchProperties(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, MsgHostAccessRequired, ctrl.Properties().Err)
	assert.Zero(t, upstream.hitCount("/host/properties"))

	err = ctrl.FetchReviews(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, MsgHostAccessRequired, ctrl.Reviews().Err)
	assert.Zero(t, upstream.hitCount("/host/reviews"))
}

func TestGuestBookingsUseGuestEndpoint(t *testing.T) {
	upstream := newFakeUpstream()
	guest := &models.User{ID: "u3", Role: models.RoleGuest}
	ctrl := newTestController(t, upstream, guest)

	require.NoError(t, ctrl.FetchBookings(context.Background(), 1, ""))

	assert.Equal(t, 1, upstream.hitCount("/bookings"))
	assert.Zero(t, upstream.hitCount("/host/bookings"))
}

func TestStatsMergeNeverZeroesUntouchedCounters(t *testing.T) {
	upstream := newFakeUpstream()
	ctrl := newTestController(t, upstream, approvedHost())

	require.NoError(t, ctrl.RefreshUnreadCount(context.Background()))
	require.NoError(t, ctrl.FetchBookings(context.Background(), 1, ""))
	// A later fetch of an unrelated feed patches nothing it doesn't own.
	require.NoError(t, ctrl.FetchFavorites(context.Background(), 1))

	stats := ctrl.Stats()
	assert.Equal(t, 7, stats.UnreadNotifications)
	assert.Equal(t, 42, stats.TotalBookings)
}

func TestVisibleBookingsAppliesLocalFilter(t *testing.T) {
	upstream := newFakeUpstream()
	ctrl := newTestController(t, upstream, approvedHost())

	// The fake returns both statuses regardless of the filter; the local
	// predicate narrows what the loaded page shows.
	require.NoError(t, ctrl.FetchBookings(context.Background(), 1, "CONFIRMED"))

	visible := ctrl.VisibleBookings()
	require.Len(t, visible, 1)
	assert.Equal(t, "CONFIRMED", visible[0].Status)
	assert.Len(t, ctrl.Bookings().Items, 2)
}
