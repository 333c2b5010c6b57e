package httpHandler

import (
	"errors"
	"net/http"

	"smarthome-server/services"

	"github.com/gin-gonic/gin"
)

// ChartHandler renders aggregation results as PNG bar charts. Unlike the
// plain analytics endpoints, an empty series here is a reportable failure.
type ChartHandler struct {
	analytics *services.AnalyticsService
}

func NewChartHandler(analytics *services.AnalyticsService) *ChartHandler {
	return &ChartHandler{analytics: analytics}
}

// ConsumptionChart handles GET /api/v1/charts/consumption.png
func (h *ChartHandler) ConsumptionChart(c *gin.Context) {
	items, err := h.analytics.ConsumptionPerDevice()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	png, err := services.RenderConsumptionChart(items)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// HouseTypeChart handles GET /api/v1/charts/house-types.png
func (h *ChartHandler) HouseTypeChart(c *gin.Context) {
	stats, err := h.analytics.HouseTypeReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	png, err := services.RenderHouseTypeChart(stats)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *ChartHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNoData) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No data available to render",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}
