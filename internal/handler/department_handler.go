package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solarhub-backend/internal/service"
	"solarhub-backend/pkg/response"
)

type DepartmentHandler struct {
	departmentService service.DepartmentService
}

func NewDepartmentHandler(departmentService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

func (h *DepartmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	departments := router.Group("/admin/departments")
	{
		departments.GET("", h.List)
		departments.POST("", h.Create)
		departments.DELETE("/:id", h.Delete)
		departments.POST("/search", h.Search)
		departments.POST("/sort", h.Sort)
	}
}

// List returns the departments screen state
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.departmentService.View()))
}

// Create adds a department
// @Summary      Add a department
// @Description  Appends a department with the next id; the manager must be an existing Manager or Admin account
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateDepartmentRequest  true  "New department"
// @Success      201      {object}  response.Response{data=service.DepartmentResponse}
// @Failure      400      {object}  response.Response
// @Router       /admin/departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	department, err := h.departmentService.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, department))
}

// Delete removes a department
// @Summary      Delete a department
// @Tags         departments
// @Produce      json
// @Param        id   path      int  true  "Department ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.departmentService.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Department not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": id}))
}

// Search sets the departments screen filter text
func (h *DepartmentHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	h.departmentService.Search(req.Term)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.departmentService.View()))
}

// Sort selects or toggles the departments screen sort key
func (h *DepartmentHandler) Sort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	if _, err := h.departmentService.Sort(req.Key); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.departmentService.View()))
}
