package handlers

import (
	"net/http"
	"time"

	"roomfinder/apiclient"
	"roomfinder/session"
	"roomfinder/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Sessions persisted through the gateway outlive a restart; a zero TTL
// would never expire them.
const sessionTTL = 24 * time.Hour

// AuthHandler proxies login/logout to the upstream API and keeps the
// resulting bearer token in the gateway's persistent session store.
type AuthHandler struct {
	baseURL    string
	httpClient *http.Client
	sessions   *redis.Client
	logger     *zap.Logger
}

func NewAuthHandler(baseURL string, httpClient *http.Client, sessions *redis.Client, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{baseURL: baseURL, httpClient: httpClient, sessions: sessions, logger: logger}
}

// LoginHandler authenticates upstream and persists the session token keyed
// by the authenticated user's ID.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	api := apiclient.New(h.baseURL, session.NewMemoryStore(), h.httpClient, h.logger)
	user, err := api.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, loginFailureMessage(err), "")
		return
	}

	token := api.Token(c.Request.Context())
	store := session.NewRedisStore(h.sessions, user.ID, sessionTTL)
	if err := store.SetToken(c.Request.Context(), token); err != nil {
		h.logger.Warn("failed to persist session token", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"token": token, "user": user},
	})
}

// LogoutHandler revokes the upstream session (best effort) and clears the
// persisted token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	store := session.NewRedisStore(h.sessions, c.GetString("userID"), sessionTTL)
	api := apiclient.New(h.baseURL, store, h.httpClient, h.logger)
	if err := api.Logout(c.Request.Context()); err != nil {
		h.logger.Warn("logout cleanup failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ProfileHandler returns the authenticated user's upstream account.
func (h *AuthHandler) ProfileHandler(c *gin.Context) {
	api := apiclient.New(h.baseURL, session.Static(c.GetString("token")), h.httpClient, h.logger)
	user, err := api.Profile(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load profile, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": user}})
}

// HostApplicationHandler surfaces the caller's host application status,
// used to route non-approved hosts to the application flow.
func (h *AuthHandler) HostApplicationHandler(c *gin.Context) {
	api := apiclient.New(h.baseURL, session.Static(c.GetString("token")), h.httpClient, h.logger)
	app, err := api.HostApplication(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load application status, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"application": app}})
}

// SubmitHostApplicationHandler applies to become a host.
func (h *AuthHandler) SubmitHostApplicationHandler(c *gin.Context) {
	var input struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	api := apiclient.New(h.baseURL, session.Static(c.GetString("token")), h.httpClient, h.logger)
	if err := api.SubmitHostApplication(c.Request.Context(), input.Reason); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to submit application, please try again", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func loginFailureMessage(err error) string {
	if reqErr, ok := err.(*apiclient.RequestError); ok && reqErr.Message != "" {
		return reqErr.Message
	}
	return "Login failed, please try again"
}
