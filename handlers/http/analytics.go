package httpHandler

import (
	"net/http"
	"strconv"

	"smarthome-server/services"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler exposes the aggregation engine. Empty results are
// legitimate successes here and serialize as empty arrays.
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func respond(c *gin.Context, data any, count int, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  data,
		"count": count,
	})
}

// DeviceUsageFrequency handles GET /api/v1/analytics/device-usage
func (h *AnalyticsHandler) DeviceUsageFrequency(c *gin.Context) {
	result, err := h.analytics.DeviceUsageFrequency()
	respond(c, result, len(result), err)
}

// PeakHourDevices handles GET /api/v1/analytics/peak-hours
func (h *AnalyticsHandler) PeakHourDevices(c *gin.Context) {
	result, err := h.analytics.PeakHourDevices()
	respond(c, result, len(result), err)
}

// TopEnergyConsumers handles GET /api/v1/analytics/top-consumers?limit=N
func (h *AnalyticsHandler) TopEnergyConsumers(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}
	result, err := h.analytics.TopEnergyConsumers(limit)
	respond(c, result, len(result), err)
}

// DevicesPerUser handles GET /api/v1/analytics/devices-per-user
func (h *AnalyticsHandler) DevicesPerUser(c *gin.Context) {
	result, err := h.analytics.DevicesPerUser()
	respond(c, result, len(result), err)
}

// HourlyUsageByDevice handles GET /api/v1/analytics/hourly-usage
func (h *AnalyticsHandler) HourlyUsageByDevice(c *gin.Context) {
	result, err := h.analytics.HourlyUsageByDevice()
	respond(c, result, len(result), err)
}

// HouseTypeReport handles GET /api/v1/analytics/house-types
func (h *AnalyticsHandler) HouseTypeReport(c *gin.Context) {
	result, err := h.analytics.HouseTypeReport()
	respond(c, result, len(result), err)
}

// ActivityByHour handles GET /api/v1/analytics/activity-by-hour
func (h *AnalyticsHandler) ActivityByHour(c *gin.Context) {
	result, err := h.analytics.ActivityByHour()
	respond(c, result, len(result), err)
}

// ConsumptionPerDevice handles GET /api/v1/analytics/consumption
func (h *AnalyticsHandler) ConsumptionPerDevice(c *gin.Context) {
	result, err := h.analytics.ConsumptionPerDevice()
	respond(c, result, len(result), err)
}
