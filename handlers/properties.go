package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"roomfinder/dashboard"
	"roomfinder/models"
	"roomfinder/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// PlatformStatsKey is the redis key the stats worker writes its snapshot to.
const PlatformStatsKey = "stats:platform:snapshot"

// PropertyHandler serves the public, pre-login property endpoints.
type PropertyHandler struct {
	clients  ClientFactory
	cache    *redis.Client
	pageSize int
	logger   *zap.Logger
}

func NewPropertyHandler(clients ClientFactory, cache *redis.Client, pageSize int, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{clients: clients, cache: cache, pageSize: pageSize, logger: logger}
}

// SearchPropertiesHandler serves public listing search. Upstream transport
// failures degrade to an empty result inside the client, so this handler
// always renders a page.
func (h *PropertyHandler) SearchPropertiesHandler(c *gin.Context) {
	limit := h.pageSize
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	api := h.clients("")
	res, err := api.SearchProperties(c.Request.Context(), c.Query("q"), c.Query("city"), pageParam(c), limit)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load properties, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": res.Success,
		"message": res.Message,
		"data": gin.H{
			"properties": res.Properties,
			"pagination": res.Pagination,
			"pageView":   dashboard.BuildPageView(res.Pagination, "properties"),
		},
	})
}

// GetPropertyHandler serves a single public listing.
func (h *PropertyHandler) GetPropertyHandler(c *gin.Context) {
	api := h.clients("")
	property, err := api.Property(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Property not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"property": property}})
}

// PropertyReviewsHandler serves reviews for a public listing.
func (h *PropertyHandler) PropertyReviewsHandler(c *gin.Context) {
	api := h.clients("")
	res, err := api.PropertyReviews(c.Request.Context(), c.Param("id"), pageParam(c), h.pageSize)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load reviews, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": res.Success,
		"message": res.Message,
		"data": gin.H{
			"reviews":    res.Reviews,
			"pagination": res.Pagination,
			"pageView":   dashboard.BuildPageView(res.Pagination, "reviews"),
		},
	})
}

// PlatformStatsHandler serves the cached platform stats snapshot the
// background worker maintains. A missing snapshot is an empty record, not
// an error.
func (h *PropertyHandler) PlatformStatsHandler(c *gin.Context) {
	var stats models.DashboardStats
	raw, err := h.cache.Get(c.Request.Context(), PlatformStatsKey).Result()
	if err == nil {
		if err := json.Unmarshal([]byte(raw), &stats); err != nil {
			h.logger.Warn("malformed stats snapshot in cache", zap.Error(err))
		}
	} else if err != redis.Nil && err != context.Canceled {
		h.logger.Warn("failed to read stats snapshot", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"stats": stats}})
}
