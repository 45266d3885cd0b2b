package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solarhub-backend/internal/service"
	"solarhub-backend/pkg/response"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/admin/settings", h.Get)
	router.PUT("/admin/settings", h.Update)
}

// Get returns the admin settings
// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.Response{data=model.Settings}
// @Router       /admin/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.settingsService.Get()))
}

// Update applies a partial settings change
// @Summary      Update settings
// @Description  Fields absent from the payload keep their current value
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateSettingsRequest  true  "Settings fields"
// @Success      200      {object}  response.Response{data=model.Settings}
// @Failure      400      {object}  response.Response
// @Router       /admin/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.settingsService.Update(req)))
}
