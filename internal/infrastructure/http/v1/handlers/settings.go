package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salilgupta4/agile-rental-management/internal/domain/gst"
	"github.com/salilgupta4/agile-rental-management/internal/domain/settings"
)

// SettingsHandler handles HTTP requests for application settings.
type SettingsHandler struct {
	*BaseHandler
	service *settings.Service
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(base *BaseHandler, service *settings.Service) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetGSTRates handles GET /settings/gst
func (h *SettingsHandler) GetGSTRates(c *gin.Context) {
	ctx := c.Request.Context()

	rates, err := h.service.GSTRates(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, rates)
}

// UpdateGSTRates handles PUT /settings/gst
func (h *SettingsHandler) UpdateGSTRates(c *gin.Context) {
	ctx := c.Request.Context()

	var rates gst.Rates
	if !h.BindJSON(c, &rates) {
		return
	}

	if err := h.service.UpdateGSTRates(ctx, rates); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "gst rates updated")
}

// RegisterRoutes registers settings routes.
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/gst", h.GetGSTRates)
	rg.PUT("/gst", h.UpdateGSTRates)
}
