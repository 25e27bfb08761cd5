package apiclient

import (
	"context"
	"net/http"

	"roomfinder/models"

	"go.uber.org/zap"
)

// NotificationList is the canonical result of a notification listing call.
type NotificationList struct {
	Success       bool                  `json:"success"`
	Message       string                `json:"message,omitempty"`
	Notifications []models.Notification `json:"notifications"`
	Pagination    models.Pagination     `json:"pagination"`
}

// Notifications lists the authenticated user's notifications.
func (c *Client) Notifications(ctx context.Context, page, limit int) (*NotificationList, error) {
	payload, err := c.request(ctx, http.MethodGet, listPath("/notifications", page, limit, nil), nil)
	if err != nil {
		return nil, err
	}
	res := normalizeList(payload, "notifications", limit)
	if !res.Success {
		return &NotificationList{Message: res.Message, Pagination: res.Pagination}, nil
	}
	items, err := decodeList[models.Notification](res.Items)
	if err != nil {
		c.logger.Warn("failed to decode notifications", zap.Error(err))
		return &NotificationList{Message: "Malformed notification data", Pagination: models.DefaultPagination(limit)}, nil
	}
	return &NotificationList{
		Success:       true,
		Message:       res.Message,
		Notifications: items,
		Pagination:    res.Pagination,
	}, nil
}

// UnreadNotificationCount fetches the unread counter for the overview stats.
// The counter arrives either as {data:{count}} or a flat {count}.
func (c *Client) UnreadNotificationCount(ctx context.Context) (int, error) {
	payload, err := c.request(ctx, http.MethodGet, "/notifications/unread-count", nil)
	if err != nil {
		return 0, err
	}
	if data, ok := payload["data"].(map[string]any); ok {
		return clampMin(pickInt(data, 0, "count", "unreadCount"), 0), nil
	}
	return clampMin(pickInt(payload, 0, "count", "unreadCount"), 0), nil
}

// MarkNotificationRead marks a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	_, err := c.request(ctx, http.MethodPatch, "/notifications/"+notificationID+"/read", nil)
	return err
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := c.request(ctx, http.MethodPatch, "/notifications/read-all", nil)
	return err
}
