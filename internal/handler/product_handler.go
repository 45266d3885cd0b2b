package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solarhub-backend/internal/service"
	"solarhub-backend/pkg/response"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/admin/products")
	{
		products.GET("", h.List)
		products.POST("", h.Create)
		products.DELETE("/:id", h.Delete)
		products.POST("/search", h.Search)
		products.POST("/sort", h.Sort)
	}
}

// List returns the product management screen state
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.productService.View()))
}

// Create adds a product record
// @Summary      Add a product
// @Description  Appends a product with the next id; the price must parse as a display amount
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateProductRequest  true  "New product"
// @Success      201      {object}  response.Response{data=model.Product}
// @Failure      400      {object}  response.Response
// @Router       /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	product, err := h.productService.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, product))
}

// Delete removes a product record
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Product not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": id}))
}

// Search sets the product screen filter text
func (h *ProductHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	h.productService.Search(req.Term)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.productService.View()))
}

// Sort selects or toggles the product screen sort key
func (h *ProductHandler) Sort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	if _, err := h.productService.Sort(req.Key); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.productService.View()))
}
