package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solarhub-backend/internal/service"
	"solarhub-backend/pkg/response"
)

type PortalHandler struct {
	portalService service.PortalService
}

func NewPortalHandler(portalService service.PortalService) *PortalHandler {
	return &PortalHandler{portalService: portalService}
}

func (h *PortalHandler) RegisterRoutes(router *gin.RouterGroup) {
	portal := router.Group("/portal")
	{
		portal.GET("", h.Overview)
		portal.GET("/orders", h.Orders)
		portal.GET("/plants", h.Plants)
		portal.GET("/profile", h.GetProfile)
		portal.PUT("/profile", h.UpdateProfile)
		portal.POST("/support", h.SubmitSupport)
	}
}

// Overview returns the customer dashboard payload
// @Summary      Portal overview
// @Description  Headline cards plus the weekly generation series for the chart
// @Tags         portal
// @Produce      json
// @Success      200  {object}  response.Response{data=service.PortalOverview}
// @Router       /portal [get]
func (h *PortalHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.portalService.Overview()))
}

// Orders lists the customer's orders
// @Summary      List orders
// @Tags         portal
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Order}
// @Router       /portal/orders [get]
func (h *PortalHandler) Orders(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.portalService.Orders()))
}

// Plants lists the customer's installations
// @Summary      List plants
// @Tags         portal
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Plant}
// @Router       /portal/plants [get]
func (h *PortalHandler) Plants(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.portalService.Plants()))
}

// GetProfile returns the customer profile
// @Summary      Get profile
// @Tags         portal
// @Produce      json
// @Success      200  {object}  response.Response{data=model.Profile}
// @Router       /portal/profile [get]
func (h *PortalHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.portalService.Profile()))
}

// UpdateProfile saves the customer profile
// @Summary      Update profile
// @Description  Replaces the contact fields; notification toggles absent from the payload keep their current value
// @Tags         portal
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateProfileRequest  true  "Profile fields"
// @Success      200      {object}  response.Response{data=model.Profile}
// @Failure      400      {object}  response.Response
// @Router       /portal/profile [put]
func (h *PortalHandler) UpdateProfile(c *gin.Context) {
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.portalService.UpdateProfile(req)))
}

// SubmitSupport accepts a support message and returns a ticket reference
// @Summary      Submit a support request
// @Tags         portal
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SupportRequest  true  "Support message"
// @Success      201      {object}  response.Response{data=model.SupportTicket}
// @Failure      400      {object}  response.Response
// @Router       /portal/support [post]
func (h *PortalHandler) SubmitSupport(c *gin.Context) {
	var req service.SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, h.portalService.SubmitSupport(req)))
}
