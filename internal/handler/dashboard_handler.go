package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solarhub-backend/internal/service"
	"solarhub-backend/pkg/response"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/admin", h.Overview)
}

// Overview returns the admin dashboard payload
// @Summary      Admin overview
// @Description  Headline cards, the monthly revenue chart with its formatted total, and the recent activity feed
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=service.AdminOverview}
// @Router       /admin [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.dashboardService.Overview()))
}
