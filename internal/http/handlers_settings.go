package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/service"
)

// @Summary Get store settings
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Router /settings [get]
func (s *Server) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.settings.Get(c))
}

// @Summary Save general settings
// @Tags settings
// @Accept json
// @Produce json
// @Param input body domain.GeneralSettings true "General settings"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} map[string]string
// @Router /settings/general [put]
func (s *Server) saveGeneralSettings(c *gin.Context) {
	var g domain.GeneralSettings
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.settings.SaveGeneral(c, g); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.settings.Get(c))
}

// @Summary Save shipping settings
// @Tags settings
// @Accept json
// @Produce json
// @Param input body domain.ShippingSettings true "Shipping settings"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} map[string]string
// @Router /settings/shipping [put]
func (s *Server) saveShippingSettings(c *gin.Context) {
	var sh domain.ShippingSettings
	if err := c.ShouldBindJSON(&sh); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.settings.SaveShipping(c, sh); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.settings.Get(c))
}

// @Summary Save tax settings
// @Tags settings
// @Accept json
// @Produce json
// @Param input body domain.TaxSettings true "Tax settings"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} map[string]string
// @Router /settings/tax [put]
func (s *Server) saveTaxSettings(c *gin.Context) {
	var t domain.TaxSettings
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.settings.SaveTax(c, t); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.settings.Get(c))
}

// @Summary List shipping zones
// @Tags shipping
// @Produce json
// @Success 200 {array} domain.ShippingZone
// @Router /shipping/zones [get]
func (s *Server) listZones(c *gin.Context) {
	c.JSON(http.StatusOK, s.settings.ListZones(c))
}

// @Summary Add shipping zone
// @Tags shipping
// @Accept json
// @Produce json
// @Param input body service.ZoneDraft true "Zone form"
// @Success 201 {object} domain.ShippingZone
// @Failure 400 {object} map[string]string
// @Router /shipping/zones [post]
func (s *Server) addZone(c *gin.Context) {
	var draft service.ZoneDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	z, err := s.settings.AddZone(c, draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, z)
}

// @Summary Delete shipping zone
// @Tags shipping
// @Produce json
// @Param id path string true "Zone ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /shipping/zones/{id} [delete]
func (s *Server) deleteZone(c *gin.Context) {
	if err := s.settings.DeleteZone(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List tax rates
// @Tags tax
// @Produce json
// @Success 200 {array} domain.TaxRate
// @Router /tax-rates [get]
func (s *Server) listTaxRates(c *gin.Context) {
	c.JSON(http.StatusOK, s.settings.ListTaxRates(c))
}

// @Summary Add tax rate
// @Tags tax
// @Accept json
// @Produce json
// @Param input body service.TaxRateDraft true "Tax rate form"
// @Success 201 {object} domain.TaxRate
// @Failure 400 {object} map[string]string
// @Router /tax-rates [post]
func (s *Server) addTaxRate(c *gin.Context) {
	var draft service.TaxRateDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	t, err := s.settings.AddTaxRate(c, draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary Delete tax rate
// @Tags tax
// @Produce json
// @Param id path string true "Tax rate ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /tax-rates/{id} [delete]
func (s *Server) deleteTaxRate(c *gin.Context) {
	if err := s.settings.DeleteTaxRate(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
