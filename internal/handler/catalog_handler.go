package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solarhub-backend/internal/service"
	"solarhub-backend/pkg/pagination"
	"solarhub-backend/pkg/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")
	{
		store.GET("", h.List)
		store.GET("/categories", h.Categories)
		store.GET("/products/:id", h.Get)
	}
}

// List returns the storefront catalog
// @Summary      Browse the catalog
// @Description  Lists catalog products, optionally filtered to one category. "All" or an omitted category returns everything.
// @Tags         store
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  response.Response{data=[]model.CatalogProduct}
// @Router       /store [get]
func (h *CatalogHandler) List(c *gin.Context) {
	params := pagination.Parse(c)
	products := h.catalogService.List(c.Query("category"))

	page, meta := pagination.Slice(products, params)
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, page, meta))
}

// Categories returns the category strip for the storefront
// @Summary      List categories
// @Tags         store
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Router       /store/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.catalogService.Categories()))
}

// Get returns one catalog product with its full detail
// @Summary      Product detail
// @Tags         store
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  response.Response{data=model.CatalogProduct}
// @Failure      404  {object}  response.Response
// @Router       /store/products/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.catalogService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, product))
}
