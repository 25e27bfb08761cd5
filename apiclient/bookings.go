package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"roomfinder/models"

	"go.uber.org/zap"
)

// BookingList is the canonical result of a booking listing call.
type BookingList struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Bookings   []models.Booking  `json:"bookings"`
	Pagination models.Pagination `json:"pagination"`
}

// HostBookings lists bookings against the authenticated host's properties,
// optionally filtered by status. The status parameter drives the server-side
// filtered set, so pagination counts always reflect the filter.
func (c *Client) HostBookings(ctx context.Context, status string, page, limit int) (*BookingList, error) {
	extra := url.Values{}
	if status != "" {
		extra.Set("status", status)
	}
	payload, err := c.request(ctx, http.MethodGet, listPath("/host/bookings", page, limit, extra), nil)
	if err != nil {
		return nil, err
	}
	return c.bookingList(payload, limit), nil
}

// GuestBookings lists the authenticated guest's own bookings.
func (c *Client) GuestBookings(ctx context.Context, status string, page, limit int) (*BookingList, error) {
	extra := url.Values{}
	if status != "" {
		extra.Set("status", status)
	}
	payload, err := c.request(ctx, http.MethodGet, listPath("/bookings", page, limit, extra), nil)
	if err != nil {
		return nil, err
	}
	return c.bookingList(payload, limit), nil
}

// CancelBooking cancels a booking. Backend failures surface verbatim; no
// automatic retry.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	_, err := c.request(ctx, http.MethodPost, "/bookings/"+bookingID+"/cancel", nil)
	return err
}

func (c *Client) bookingList(payload map[string]any, limit int) *BookingList {
	res := normalizeList(payload, "bookings", limit)
	if !res.Success {
		return &BookingList{Message: res.Message, Pagination: res.Pagination}
	}
	items, err := decodeList[models.Booking](res.Items)
	if err != nil {
		c.logger.Warn("failed to decode bookings", zap.Error(err))
		return &BookingList{Message: "Malformed booking data", Pagination: models.DefaultPagination(limit)}
	}
	return &BookingList{
		Success:    true,
		Message:    res.Message,
		Bookings:   items,
		Pagination: res.Pagination,
	}
}
