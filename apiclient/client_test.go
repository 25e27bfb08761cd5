package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomfinder/models"
	"roomfinder/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, session.NewMemoryStore(), srv.Client(), nil), srv
}

func TestRequestMalformedBodyFailsAsEmptyResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"this is": not json`))
	}))

	_, err := client.request(context.Background(), http.MethodGet, "/broken", nil)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "Empty response from server", reqErr.Message)
	assert.Equal(t, http.StatusOK, reqErr.Status)
}

func TestRequestSurfacesBackendMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "Check-in date is in the past"}`))
	}))

	_, err := client.request(context.Background(), http.MethodGet, "/bookings", nil)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "Check-in date is in the past", reqErr.Message)
}

func TestRequestAttachesBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"success": true, "data": {"bookings": [], "pagination": {"page":1,"pages":1,"total":0,"limit":10}}}`))
	}))
	require.NoError(t, client.SetToken(context.Background(), "tok-123"))

	_, err := client.HostBookings(context.Background(), "", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestPublicRequestOmitsAuthorization(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message": "ok", "properties": [], "pagination": {"page":1,"pages":1,"total":0,"limit":10}}`))
	}))
	require.NoError(t, client.SetToken(context.Background(), "tok-123"))

	_, err := client.SearchProperties(context.Background(), "", "", 1, 10)
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
}

func TestSearchPropertiesTransportFallback(t *testing.T) {
	// Point at a server that is already closed to force a transport error.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := New(srv.URL, session.NewMemoryStore(), nil, nil)

	res, err := client.SearchProperties(context.Background(), "loft", "", 1, 10)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Properties)
	assert.Equal(t, models.DefaultPagination(10), res.Pagination)
}

func TestTokenLazyBackfillFromStore(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.SetToken(context.Background(), "restored-tok"))

	client := New("http://example.invalid", store, nil, nil)

	assert.Equal(t, "restored-tok", client.Token(context.Background()))
}

func TestSetTokenEmptyClearsStore(t *testing.T) {
	store := session.NewMemoryStore()
	client := New("http://example.invalid", store, nil, nil)
	require.NoError(t, client.SetToken(context.Background(), "tok"))

	require.NoError(t, client.SetToken(context.Background(), ""))

	_, err := store.Token(context.Background())
	assert.ErrorIs(t, err, session.ErrNoToken)
	assert.Empty(t, client.Token(context.Background()))
}

func TestLoginStoresTokenAndReturnsUser(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": {"token": "fresh-tok", "user": {"id": "u1", "email": "amina@example.com", "role": "host", "approvalStatus": "approved"}}}`))
	}))

	user, err := client.Login(context.Background(), "amina@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, models.RoleHost, user.Role)
	assert.Equal(t, "fresh-tok", client.Token(context.Background()))
}

func TestLoginFlatPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token": "flat-tok", "user": {"id": "u2", "email": "guest@example.com", "role": "guest"}}`))
	}))

	user, err := client.Login(context.Background(), "guest@example.com", "pw")

	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
	assert.Equal(t, "flat-tok", client.Token(context.Background()))
}

func TestHostBookingsDecodesFlatLegacy(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "ok", "bookings": [{"id": "b1", "status": "CONFIRMED", "totalPrice": 480}], "pagination": {"page": 2, "pages": 5, "total": 42, "limit": 10}}`))
	}))

	res, err := client.HostBookings(context.Background(), "", 2, 10)

	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, "b1", res.Bookings[0].ID)
	assert.Equal(t, 480.0, res.Bookings[0].TotalPrice)
	assert.Equal(t, models.Pagination{CurrentPage: 2, TotalPages: 5, TotalItems: 42, ItemsPerPage: 10}, res.Pagination)
}

func TestHostBookingsForwardsStatusFilter(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"message": "ok", "bookings": [], "pagination": {"page":1,"pages":1,"total":0,"limit":10}}`))
	}))

	_, err := client.HostBookings(context.Background(), "CONFIRMED", 3, 10)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "status=CONFIRMED")
	assert.Contains(t, gotQuery, "page=3")
	assert.Contains(t, gotQuery, "limit=10")
}

func TestUnreadNotificationCountShapes(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{`{"success": true, "data": {"count": 7}}`, 7},
		{`{"count": 3}`, 3},
		{`{"data": {"unreadCount": 12}}`, 12},
	}
	for _, tt := range tests {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(tt.body))
		}))
		got, err := client.UnreadNotificationCount(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
