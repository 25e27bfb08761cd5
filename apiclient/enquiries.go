package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"roomfinder/models"

	"go.uber.org/zap"
)

// EnquiryList is the canonical result of an enquiry listing call.
type EnquiryList struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Enquiries  []models.Enquiry  `json:"enquiries"`
	Pagination models.Pagination `json:"pagination"`
}

// Enquiries lists enquiries addressed to the authenticated user, optionally
// filtered by status.
func (c *Client) Enquiries(ctx context.Context, status string, page, limit int) (*EnquiryList, error) {
	extra := url.Values{}
	if status != "" {
		extra.Set("status", status)
	}
	payload, err := c.request(ctx, http.MethodGet, listPath("/enquiries", page, limit, extra), nil)
	if err != nil {
		return nil, err
	}
	return c.enquiryList(payload, limit), nil
}

// CreateEnquiry submits a new enquiry or support request.
func (c *Client) CreateEnquiry(ctx context.Context, propertyID, subject, message string) error {
	body := map[string]any{
		"propertyId": propertyID,
		"subject":    subject,
		"message":    message,
	}
	_, err := c.request(ctx, http.MethodPost, "/enquiries", body)
	return err
}

func (c *Client) enquiryList(payload map[string]any, limit int) *EnquiryList {
	res := normalizeList(payload, "enquiries", limit)
	if !res.Success {
		return &EnquiryList{Message: res.Message, Pagination: res.Pagination}
	}
	items, err := decodeList[models.Enquiry](res.Items)
	if err != nil {
		c.logger.Warn("failed to decode enquiries", zap.Error(err))
		return &EnquiryList{Message: "Malformed enquiry data", Pagination: models.DefaultPagination(limit)}
	}
	return &EnquiryList{
		Success:    true,
		Message:    res.Message,
		Enquiries:  items,
		Pagination: res.Pagination,
	}
}
