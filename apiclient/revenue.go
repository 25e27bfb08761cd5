package apiclient

import (
	"context"
	"net/http"

	"roomfinder/models"
)

// RevenueConfigurations lists every fee policy (admin only).
func (c *Client) RevenueConfigurations(ctx context.Context) ([]models.RevenueConfiguration, error) {
	payload, err := c.request(ctx, http.MethodGet, "/admin/revenue-configs", nil)
	if err != nil {
		return nil, err
	}
	res := normalizeList(payload, "configurations", 50)
	if !res.Success {
		return nil, &RequestError{Status: http.StatusBadGateway, Message: res.Message}
	}
	return decodeList[models.RevenueConfiguration](res.Items)
}

// CreateRevenueConfiguration creates a new fee policy.
func (c *Client) CreateRevenueConfiguration(ctx context.Context, cfg models.RevenueConfiguration) (*models.RevenueConfiguration, error) {
	payload, err := c.request(ctx, http.MethodPost, "/admin/revenue-configs", cfg)
	if err != nil {
		return nil, err
	}
	return c.singleConfig(payload)
}

// UpdateRevenueConfiguration applies a partial update. The patch is a raw
// map so an explicit JSON null can clear an optional cap, which a struct
// with omitempty tags cannot express.
func (c *Client) UpdateRevenueConfiguration(ctx context.Context, id string, patch map[string]any) (*models.RevenueConfiguration, error) {
	payload, err := c.request(ctx, http.MethodPatch, "/admin/revenue-configs/"+id, patch)
	if err != nil {
		return nil, err
	}
	return c.singleConfig(payload)
}

// ActivateRevenueConfiguration makes the given policy the single active one.
// Exclusivity is enforced server-side; revenue.Manager mirrors it locally.
func (c *Client) ActivateRevenueConfiguration(ctx context.Context, id string) error {
	_, err := c.request(ctx, http.MethodPut, "/admin/revenue-configs/"+id+"/activate", nil)
	return err
}

// DeleteRevenueConfiguration removes a fee policy.
func (c *Client) DeleteRevenueConfiguration(ctx context.Context, id string) error {
	_, err := c.request(ctx, http.MethodDelete, "/admin/revenue-configs/"+id, nil)
	return err
}

func (c *Client) singleConfig(payload map[string]any) (*models.RevenueConfiguration, error) {
	res := normalizeList(payload, "configurations", 1)
	if !res.Success || len(res.Items) == 0 {
		return nil, &RequestError{Status: http.StatusBadGateway, Message: res.Message}
	}
	return decodeObject[models.RevenueConfiguration](res.Items[0])
}
