package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solarhub-backend/internal/service"
	"solarhub-backend/pkg/response"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/admin/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/search", h.Search)
		tasks.POST("/sort", h.Sort)
		tasks.PATCH("/:id/status", h.UpdateStatus)
	}
}

// List returns the task management screen state
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.taskService.View()))
}

// Create adds a task
// @Summary      Add a task
// @Description  Appends a task with the next id; status defaults to Pending; the assignee must be an existing user
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateTaskRequest  true  "New task"
// @Success      201      {object}  response.Response{data=service.TaskResponse}
// @Failure      400      {object}  response.Response
// @Router       /admin/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	task, err := h.taskService.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, task))
}

// Delete removes a task
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Task not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": id}))
}

// UpdateStatus moves a task through its lifecycle
// @Summary      Update task status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id       path      int                               true  "Task ID"
// @Param        payload  body      service.UpdateTaskStatusRequest  true  "New status"
// @Success      200      {object}  response.Response{data=service.TaskResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /admin/tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	task, err := h.taskService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Task not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, task))
}

// Search sets the task screen filter text
func (h *TaskHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	h.taskService.Search(req.Term)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.taskService.View()))
}

// Sort selects or toggles the task screen sort key
func (h *TaskHandler) Sort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	if _, err := h.taskService.Sort(req.Key); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.taskService.View()))
}
