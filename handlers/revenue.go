package handlers

import (
	"errors"
	"net/http"

	"roomfinder/models"
	"roomfinder/revenue"
	"roomfinder/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RevenueHandler serves the admin fee-policy endpoints. Each request gets a
// manager bound to the caller's token; the manager refreshes its cache from
// upstream before acting so the exclusive-activation flip is applied to
// current data.
type RevenueHandler struct {
	clients ClientFactory
	logger  *zap.Logger
}

func NewRevenueHandler(clients ClientFactory, logger *zap.Logger) *RevenueHandler {
	return &RevenueHandler{clients: clients, logger: logger}
}

func (h *RevenueHandler) manager(c *gin.Context) (*revenue.Manager, error) {
	m := revenue.NewManager(h.clients(c.GetString("token")), h.logger)
	if err := m.Refresh(c.Request.Context()); err != nil {
		return nil, err
	}
	return m, nil
}

// ListHandler returns every fee policy.
func (h *RevenueHandler) ListHandler(c *gin.Context) {
	m, err := h.manager(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load configurations, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"configurations": m.Configurations()},
	})
}

// CreateHandler creates a new fee policy. Name and description are
// validated before any upstream call; new policies always start inactive.
func (h *RevenueHandler) CreateHandler(c *gin.Context) {
	var cfg models.RevenueConfiguration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	m, err := h.manager(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load configurations, please try again", err.Error())
		return
	}

	created, err := m.Create(c.Request.Context(), cfg)
	if err != nil {
		if errors.Is(err, revenue.ErrNameRequired) || errors.Is(err, revenue.ErrDescriptionRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Failed to create configuration, please try again", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"configuration": created}})
}

// ActivateHandler makes one policy the single active one and returns the
// full list so the caller sees the exclusive flip applied.
func (h *RevenueHandler) ActivateHandler(c *gin.Context) {
	m, err := h.manager(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load configurations, please try again", err.Error())
		return
	}
	if err := m.Activate(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to activate configuration, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"configurations": m.Configurations()},
	})
}

// UpdateHandler applies a partial update. A null cap field in the request
// body clears the cap; an absent field leaves it untouched.
func (h *RevenueHandler) UpdateHandler(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	m, err := h.manager(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load configurations, please try again", err.Error())
		return
	}

	updated, err := m.Update(c.Request.Context(), c.Param("id"), patchFromBody(body))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to update configuration, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"configuration": updated}})
}

// DeleteHandler removes a fee policy.
func (h *RevenueHandler) DeleteHandler(c *gin.Context) {
	m, err := h.manager(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load configurations, please try again", err.Error())
		return
	}
	if err := m.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to delete configuration, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CalculateHandler runs an amount through the active policy. Refused, with
// no upstream calculation call, while no policy is active.
func (h *RevenueHandler) CalculateHandler(c *gin.Context) {
	var input struct {
		Amount   float64 `json:"amount" binding:"required"`
		Currency string  `json:"currency"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	m, err := h.manager(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to load configurations, please try again", err.Error())
		return
	}

	breakdown, err := m.Calculate(input.Amount, input.Currency)
	if err != nil {
		if errors.Is(err, revenue.ErrNoActiveConfiguration) {
			c.JSON(http.StatusConflict, gin.H{"error": "No active revenue configuration"})
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Failed to calculate fees, please try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"breakdown": breakdown}})
}

// patchFromBody maps a decoded JSON body onto an UpdatePatch, preserving
// the distinction between an absent cap field and an explicit null.
func patchFromBody(body map[string]any) revenue.UpdatePatch {
	var p revenue.UpdatePatch
	if v, ok := body["name"].(string); ok {
		p.Name = &v
	}
	if v, ok := body["description"].(string); ok {
		p.Description = &v
	}
	p.HostServiceFeePercent = floatField(body, "hostServiceFeePercent")
	p.HostServiceFeeMin = floatField(body, "hostServiceFeeMin")
	if raw, present := body["hostServiceFeeMax"]; present {
		if raw == nil {
			p.ClearHostServiceFeeMax = true
		} else if v, ok := raw.(float64); ok {
			p.HostServiceFeeMax = &v
		}
	}
	p.GuestServiceFeePercent = floatField(body, "guestServiceFeePercent")
	p.GuestServiceFeeMin = floatField(body, "guestServiceFeeMin")
	if raw, present := body["guestServiceFeeMax"]; present {
		if raw == nil {
			p.ClearGuestServiceFeeMax = true
		} else if v, ok := raw.(float64); ok {
			p.GuestServiceFeeMax = &v
		}
	}
	if v, ok := body["appliesToBookings"].(bool); ok {
		p.AppliesToBookings = &v
	}
	if v, ok := body["appliesToWithdrawals"].(bool); ok {
		p.AppliesToWithdrawals = &v
	}
	return p
}

func floatField(body map[string]any, key string) *float64 {
	if v, ok := body[key].(float64); ok {
		return &v
	}
	return nil
}
