package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
	"github.com/jaswanth12321/ecom-admin-suite/internal/service"
)

// @Summary List low stock alerts
// @Tags inventory
// @Produce json
// @Param q query string false "Search by name, SKU or category"
// @Param status query string false "Severity filter: critical or warning"
// @Success 200 {array} domain.InventoryAlert
// @Router /inventory/alerts [get]
func (s *Server) listAlerts(c *gin.Context) {
	f := repository.AlertFilter{Query: c.Query("q"), Status: c.Query("status")}
	c.JSON(http.StatusOK, s.inventory.Alerts(c, f))
}

// @Summary Restock product
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param input body service.RestockDraft true "Restock form"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/{id}/restock [post]
func (s *Server) restockProduct(c *gin.Context) {
	var draft service.RestockDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.inventory.Restock(c, c.Param("id"), draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
