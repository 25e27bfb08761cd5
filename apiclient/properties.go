package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"roomfinder/models"

	"go.uber.org/zap"
)

// PropertyList is the canonical result of a property listing call.
type PropertyList struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Properties []models.Property `json:"properties"`
	Pagination models.Pagination `json:"pagination"`
}

// SearchProperties queries public listings. Works pre-login. Transport
// failures degrade to an empty result with default pagination; the raw
// error is logged, never surfaced.
func (c *Client) SearchProperties(ctx context.Context, query, city string, page, limit int) (*PropertyList, error) {
	extra := url.Values{}
	if query != "" {
		extra.Set("q", query)
	}
	if city != "" {
		extra.Set("city", city)
	}
	payload, err := c.publicRequest(ctx, http.MethodGet, listPath("/properties", page, limit, extra), nil)
	if err != nil {
		c.logger.Warn("property search failed, returning empty result", zap.Error(err))
		return &PropertyList{
			Success:    true,
			Pagination: models.DefaultPagination(limit),
		}, nil
	}
	return c.propertyList(payload, limit), nil
}

// HostProperties lists the authenticated host's own properties.
func (c *Client) HostProperties(ctx context.Context, status string, page, limit int) (*PropertyList, error) {
	extra := url.Values{}
	if status != "" {
		extra.Set("status", status)
	}
	payload, err := c.request(ctx, http.MethodGet, listPath("/host/properties", page, limit, extra), nil)
	if err != nil {
		return nil, err
	}
	return c.propertyList(payload, limit), nil
}

// Property fetches a single listing by ID. The upstream returns either the
// canonical envelope or a bare entity; both normalize to a one-item list.
func (c *Client) Property(ctx context.Context, id string) (*models.Property, error) {
	payload, err := c.publicRequest(ctx, http.MethodGet, "/properties/"+id, nil)
	if err != nil {
		return nil, err
	}
	res := normalizeList(payload, "properties", 1)
	if !res.Success || len(res.Items) == 0 {
		return nil, &RequestError{Status: http.StatusNotFound, Message: res.Message}
	}
	return decodeObject[models.Property](res.Items[0])
}

func (c *Client) propertyList(payload map[string]any, limit int) *PropertyList {
	res := normalizeList(payload, "properties", limit)
	if !res.Success {
		return &PropertyList{Message: res.Message, Pagination: res.Pagination}
	}
	items, err := decodeList[models.Property](res.Items)
	if err != nil {
		c.logger.Warn("failed to decode properties", zap.Error(err))
		return &PropertyList{Message: "Malformed property data", Pagination: models.DefaultPagination(limit)}
	}
	return &PropertyList{
		Success:    true,
		Message:    res.Message,
		Properties: items,
		Pagination: res.Pagination,
	}
}
