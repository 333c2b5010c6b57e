package httpHandler

import (
	"net/http"

	"smarthome-server/entities"
	"smarthome-server/usecases"

	"github.com/gin-gonic/gin"
)

type EnergyConsumptionHandler struct {
	useCase *usecases.EnergyConsumptionUseCase
}

func NewEnergyConsumptionHandler(useCase *usecases.EnergyConsumptionUseCase) *EnergyConsumptionHandler {
	return &EnergyConsumptionHandler{
		useCase: useCase,
	}
}

// CreateEnergyConsumption handles POST /api/v1/energy-consumptions
func (h *EnergyConsumptionHandler) CreateEnergyConsumption(c *gin.Context) {
	var record entities.EnergyConsumption

	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.CreateEnergyConsumption(&record); err != nil {
		c.JSON(statusFromError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Energy consumption recorded successfully",
		"data":    record,
	})
}

// GetEnergyConsumption handles GET /api/v1/energy-consumptions/:id
func (h *EnergyConsumptionHandler) GetEnergyConsumption(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	record, err := h.useCase.GetEnergyConsumption(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Energy consumption record not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": record,
	})
}

// GetAllEnergyConsumptions handles GET /api/v1/energy-consumptions
func (h *EnergyConsumptionHandler) GetAllEnergyConsumptions(c *gin.Context) {
	records, err := h.useCase.GetAllEnergyConsumptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve energy consumption records",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  records,
		"count": len(records),
	})
}

// UpdateEnergyConsumption handles PUT /api/v1/energy-consumptions/:id
func (h *EnergyConsumptionHandler) UpdateEnergyConsumption(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var record entities.EnergyConsumption
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	record.ID = id

	if err := h.useCase.UpdateEnergyConsumption(&record); err != nil {
		c.JSON(statusFromError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Energy consumption updated successfully",
		"data":    record,
	})
}

// DeleteEnergyConsumption handles DELETE /api/v1/energy-consumptions/:id
func (h *EnergyConsumptionHandler) DeleteEnergyConsumption(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteEnergyConsumption(id); err != nil {
		c.JSON(statusFromError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Energy consumption record deleted successfully",
	})
}
