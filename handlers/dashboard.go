package handlers

import (
	"net/http"

	"roomfinder/dashboard"
	"roomfinder/models"
	"roomfinder/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the per-user dashboard feeds and overview.
type DashboardHandler struct {
	clients  ClientFactory
	pageSize int
	logger   *zap.Logger
}

func NewDashboardHandler(clients ClientFactory, pageSize int, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{clients: clients, pageSize: pageSize, logger: logger}
}

func (h *DashboardHandler) controller(c *gin.Context) *dashboard.Controller {
	api := h.clients(c.GetString("token"))
	return dashboard.NewController(api, userFromContext(c), h.pageSize, h.logger)
}

// OverviewHandler fans out the initial fetch of every feed concurrently and
// returns the full dashboard state plus merged stats. Individual feed
// failures arrive as per-feed error strings, never as a failed response.
func (h *DashboardHandler) OverviewHandler(c *gin.Context) {
	ctrl := h.controller(c)
	ctrl.LoadAll(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"stats":         ctrl.Stats(),
			"properties":    ctrl.Properties(),
			"bookings":      ctrl.Bookings(),
			"reviews":       ctrl.Reviews(),
			"enquiries":     ctrl.Enquiries(),
			"favorites":     ctrl.Favorites(),
			"notifications": ctrl.Notifications(),
			"transactions":  ctrl.Transactions(),
		},
	})
}

// PropertiesHandler serves one page of the host's listings feed.
func (h *DashboardHandler) PropertiesHandler(c *gin.Context) {
	ctrl := h.controller(c)
	if err := ctrl.FetchProperties(c.Request.Context(), pageParam(c)); err != nil {
		h.logger.Warn("properties feed fetch failed", zap.Error(err))
	}
	feed := ctrl.Properties()
	respondFeed(c, feed, feed.Pagination, "properties")
}

// BookingsHandler serves one page of the bookings feed. The status query
// parameter is forwarded upstream so pagination counts always reflect the
// server-side filtered set.
func (h *DashboardHandler) BookingsHandler(c *gin.Context) {
	ctrl := h.controller(c)
	if err := ctrl.FetchBookings(c.Request.Context(), pageParam(c), c.Query("status")); err != nil {
		h.logger.Warn("bookings feed fetch failed", zap.Error(err))
	}
	feed := ctrl.Bookings()
	respondFeed(c, feed, feed.Pagination, "bookings")
}

// ReviewsHandler serves one page of the host's reviews feed.
func (h *DashboardHandler) ReviewsHandler(c *gin.Context) {
	ctrl := h.controller(c)
	if err := ctrl.FetchReviews(c.Request.Context(), pageParam(c)); err != nil {
		h.logger.Warn("reviews feed fetch failed", zap.Error(err))
	}
	feed := ctrl.Reviews()
	respondFeed(c, feed, feed.Pagination, "reviews")
}

// EnquiriesHandler serves one page of the enquiries feed.
func (h *DashboardHandler) EnquiriesHandler(c *gin.Context) {
	ctrl := h.controller(c)
	if err := ctrl.FetchEnquiries(c.Request.Context(), pageParam(c), c.Query("status")); err != nil {
		h.logger.Warn("enquiries feed fetch failed", zap.Error(err))
	}
	feed := ctrl.Enquiries()
	respondFeed(c, feed, feed.Pagination, "enquiries")
}

// FavoritesHandler serves one page of the favorites feed.
func (h *DashboardHandler) FavoritesHandler(c *gin.Context) {
	ctrl := h.controller(c)
	if err := ctrl.FetchFavorites(c.Request.Context(), pageParam(c)); err != nil {
		h.logger.Warn("favorites feed fetch failed", zap.Error(err))
	}
	feed := ctrl.Favorites()
	respondFeed(c, feed, feed.Pagination, "favorites")
}

// NotificationsHandler serves one page of the notifications feed.
func (h *DashboardHandler) NotificationsHandler(c *gin.Context) {
	ctrl := h.controller(c)
	if err := ctrl.FetchNotifications(c.Request.Context(), pageParam(c)); err != nil {
		h.logger.Warn("notifications feed fetch failed", zap.Error(err))
	}
	feed := ctrl.Notifications()
	respondFeed(c, feed, feed.Pagination, "notifications")
}

// TransactionsHandler serves one page of the wallet ledger feed.
func (h *DashboardHandler) TransactionsHandler(c *gin.Context) {
	ctrl := h.controller(c)
	if err := ctrl.FetchTransactions(c.Request.Context(), pageParam(c)); err != nil {
		h.logger.Warn("transactions feed fetch failed", zap.Error(err))
	}
	feed := ctrl.Transactions()
	respondFeed(c, feed, feed.Pagination, "transactions")
}

// MarkNotificationReadHandler marks one notification as read.
func (h *DashboardHandler) MarkNotificationReadHandler(c *gin.Context) {
	api := h.clients(c.GetString("token"))
	if err := api.MarkNotificationRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to update notification, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAllNotificationsReadHandler marks every notification as read.
func (h *DashboardHandler) MarkAllNotificationsReadHandler(c *gin.Context) {
	api := h.clients(c.GetString("token"))
	if err := api.MarkAllNotificationsRead(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to update notifications, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// WithdrawHandler submits a wallet withdrawal request.
func (h *DashboardHandler) WithdrawHandler(c *gin.Context) {
	var req models.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	api := h.clients(c.GetString("token"))
	if err := api.RequestWithdrawal(c.Request.Context(), req); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Withdrawal failed, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreateEnquiryHandler submits a new enquiry.
func (h *DashboardHandler) CreateEnquiryHandler(c *gin.Context) {
	var input struct {
		PropertyID string `json:"propertyId"`
		Subject    string `json:"subject"`
		Message    string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	api := h.clients(c.GetString("token"))
	if err := api.CreateEnquiry(c.Request.Context(), input.PropertyID, input.Subject, input.Message); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to send enquiry, please try again", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// respondFeed writes one feed page in the canonical envelope, with the
// derived pagination controls the UI renders verbatim.
func respondFeed[T any](c *gin.Context, feed dashboard.FeedState[T], pg models.Pagination, noun string) {
	c.JSON(http.StatusOK, gin.H{
		"success": feed.Err == "",
		"message": feed.Err,
		"data": gin.H{
			noun:         feed.Items,
			"pagination": pg,
			"pageView":   dashboard.BuildPageView(pg, noun),
		},
	})
}
