package apiclient

import (
	"context"
	"net/http"

	"roomfinder/models"

	"go.uber.org/zap"
)

// FavoriteList is the canonical result of a favorites listing call.
type FavoriteList struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Favorites  []models.Favorite `json:"favorites"`
	Pagination models.Pagination `json:"pagination"`
}

// Favorites lists the authenticated user's saved properties.
func (c *Client) Favorites(ctx context.Context, page, limit int) (*FavoriteList, error) {
	payload, err := c.request(ctx, http.MethodGet, listPath("/favorites", page, limit, nil), nil)
	if err != nil {
		return nil, err
	}
	res := normalizeList(payload, "favorites", limit)
	if !res.Success {
		return &FavoriteList{Message: res.Message, Pagination: res.Pagination}, nil
	}
	items, err := decodeList[models.Favorite](res.Items)
	if err != nil {
		c.logger.Warn("failed to decode favorites", zap.Error(err))
		return &FavoriteList{Message: "Malformed favorite data", Pagination: models.DefaultPagination(limit)}, nil
	}
	return &FavoriteList{
		Success:    true,
		Message:    res.Message,
		Favorites:  items,
		Pagination: res.Pagination,
	}, nil
}

// AddFavorite saves a property to the user's favorites.
func (c *Client) AddFavorite(ctx context.Context, propertyID string) error {
	body := map[string]any{"propertyId": propertyID}
	_, err := c.request(ctx, http.MethodPost, "/favorites", body)
	return err
}

// RemoveFavorite deletes a property from the user's favorites.
func (c *Client) RemoveFavorite(ctx context.Context, propertyID string) error {
	_, err := c.request(ctx, http.MethodDelete, "/favorites/"+propertyID, nil)
	return err
}
