package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"roomfinder/models"

	"go.uber.org/zap"
)

// ReviewList is the canonical result of a review listing call.
type ReviewList struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Reviews    []models.Review   `json:"reviews"`
	Pagination models.Pagination `json:"pagination"`
}

// HostReviews lists reviews left on the authenticated host's properties.
func (c *Client) HostReviews(ctx context.Context, page, limit int) (*ReviewList, error) {
	payload, err := c.request(ctx, http.MethodGet, listPath("/host/reviews", page, limit, nil), nil)
	if err != nil {
		return nil, err
	}
	return c.reviewList(payload, limit), nil
}

// PropertyReviews lists reviews for a single public listing.
func (c *Client) PropertyReviews(ctx context.Context, propertyID string, page, limit int) (*ReviewList, error) {
	extra := url.Values{}
	extra.Set("propertyId", propertyID)
	payload, err := c.publicRequest(ctx, http.MethodGet, listPath("/reviews", page, limit, extra), nil)
	if err != nil {
		return nil, err
	}
	return c.reviewList(payload, limit), nil
}

// ReplyToReview posts the host's reply on a review.
func (c *Client) ReplyToReview(ctx context.Context, reviewID, reply string) error {
	body := map[string]any{"reply": reply}
	_, err := c.request(ctx, http.MethodPost, "/reviews/"+reviewID+"/reply", body)
	return err
}

func (c *Client) reviewList(payload map[string]any, limit int) *ReviewList {
	res := normalizeList(payload, "reviews", limit)
	if !res.Success {
		return &ReviewList{Message: res.Message, Pagination: res.Pagination}
	}
	items, err := decodeList[models.Review](res.Items)
	if err != nil {
		c.logger.Warn("failed to decode reviews", zap.Error(err))
		return &ReviewList{Message: "Malformed review data", Pagination: models.DefaultPagination(limit)}
	}
	return &ReviewList{
		Success:    true,
		Message:    res.Message,
		Reviews:    items,
		Pagination: res.Pagination,
	}
}
