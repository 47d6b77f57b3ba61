package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Dashboard overview
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardView
// @Router /dashboard [get]
func (s *Server) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.analytics.Dashboard(c))
}

// @Summary Analytics report
// @Tags analytics
// @Produce json
// @Success 200 {object} service.AnalyticsView
// @Router /analytics [get]
func (s *Server) getAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, s.analytics.Report(c))
}

type exportReq struct {
	Format string `json:"format"`
}

// @Summary Queue analytics export
// @Tags analytics
// @Accept json
// @Produce json
// @Param input body exportReq false "Export format, defaults to csv"
// @Success 202 {object} map[string]string
// @Router /analytics/export [post]
func (s *Server) exportAnalytics(c *gin.Context) {
	var req exportReq
	// Тело необязательное.
	_ = c.ShouldBindJSON(&req)
	s.analytics.Export(c, req.Format)
	format := req.Format
	if format == "" {
		format = "csv"
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued", "format": format})
}
