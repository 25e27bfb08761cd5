package handlers

import (
	"strconv"

	"roomfinder/apiclient"
	"roomfinder/models"

	"github.com/gin-gonic/gin"
)

// ClientFactory builds an API client bound to one bearer token. Handlers
// use it to forward each caller's upstream session without sharing token
// state between requests.
type ClientFactory func(token string) *apiclient.Client

// userFromContext rebuilds the caller's identity from the claims the auth
// middleware stored on the request context.
func userFromContext(c *gin.Context) *models.User {
	return &models.User{
		ID:             c.GetString("userID"),
		Role:           c.GetString("role"),
		ApprovalStatus: c.GetString("approvalStatus"),
	}
}

// pageParam reads the 1-indexed page query parameter, defaulting to 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
