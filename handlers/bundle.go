// File: roomfinder/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	LoginHandler                 gin.HandlerFunc
	LogoutHandler                gin.HandlerFunc
	ProfileHandler               gin.HandlerFunc
	HostApplicationHandler       gin.HandlerFunc
	SubmitHostApplicationHandler gin.HandlerFunc

	// Public property endpoints
	SearchPropertiesHandler gin.HandlerFunc
	GetPropertyHandler      gin.HandlerFunc
	PropertyReviewsHandler  gin.HandlerFunc
	PlatformStatsHandler    gin.HandlerFunc

	// Dashboard feed endpoints
	OverviewHandler                 gin.HandlerFunc
	PropertiesHandler               gin.HandlerFunc
	BookingsHandler                 gin.HandlerFunc
	ReviewsHandler                  gin.HandlerFunc
	EnquiriesHandler                gin.HandlerFunc
	FavoritesHandler                gin.HandlerFunc
	NotificationsHandler            gin.HandlerFunc
	TransactionsHandler             gin.HandlerFunc
	MarkNotificationReadHandler     gin.HandlerFunc
	MarkAllNotificationsReadHandler gin.HandlerFunc
	WithdrawHandler                 gin.HandlerFunc
	CreateEnquiryHandler            gin.HandlerFunc

	// Admin revenue endpoints
	RevenueListHandler      gin.HandlerFunc
	RevenueCreateHandler    gin.HandlerFunc
	RevenueActivateHandler  gin.HandlerFunc
	RevenueUpdateHandler    gin.HandlerFunc
	RevenueDeleteHandler    gin.HandlerFunc
	RevenueCalculateHandler gin.HandlerFunc
}
