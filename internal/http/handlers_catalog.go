package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
	"github.com/jaswanth12321/ecom-admin-suite/internal/service"
)

// @Summary List products
// @Tags products
// @Produce json
// @Param q query string false "Search by name, SKU or category"
// @Param category query string false "Category filter, 'all' matches everything"
// @Param status query string false "Stock status filter"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	f := repository.ProductFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MaxPrice = &v
		}
	}
	c.JSON(http.StatusOK, s.catalog.ListProducts(c, f))
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param input body service.ProductDraft true "Product form"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var draft service.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.catalog.CreateProduct(c, draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.catalog.GetProduct(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Delete product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.catalog.DeleteProduct(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Param q query string false "Search by name"
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.ListCategories(c, c.Query("q")))
}

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param input body service.CategoryDraft true "Category form"
// @Success 201 {object} domain.Category
// @Failure 400 {object} map[string]string
// @Router /categories [post]
func (s *Server) createCategory(c *gin.Context) {
	var draft service.CategoryDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	cat, err := s.catalog.CreateCategory(c, draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// @Summary Delete category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [delete]
func (s *Server) deleteCategory(c *gin.Context) {
	if err := s.catalog.DeleteCategory(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
