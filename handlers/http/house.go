package httpHandler

import (
	"net/http"

	"smarthome-server/entities"
	"smarthome-server/usecases"

	"github.com/gin-gonic/gin"
)

type HouseHandler struct {
	useCase *usecases.HouseUseCase
}

func NewHouseHandler(useCase *usecases.HouseUseCase) *HouseHandler {
	return &HouseHandler{
		useCase: useCase,
	}
}

// CreateHouse handles POST /api/v1/houses. The house type is derived from
// the area server-side; any client-provided type is ignored.
func (h *HouseHandler) CreateHouse(c *gin.Context) {
	var house entities.House

	if err := c.ShouldBindJSON(&house); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.CreateHouse(&house); err != nil {
		c.JSON(statusFromError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "House created successfully",
		"data":    house,
	})
}

// GetHouse handles GET /api/v1/houses/:id
func (h *HouseHandler) GetHouse(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	house, err := h.useCase.GetHouse(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "House not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": house,
	})
}

// GetAllHouses handles GET /api/v1/houses
func (h *HouseHandler) GetAllHouses(c *gin.Context) {
	houses, err := h.useCase.GetAllHouses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve houses",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  houses,
		"count": len(houses),
	})
}

// UpdateHouse handles PUT /api/v1/houses/:id
func (h *HouseHandler) UpdateHouse(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var house entities.House
	if err := c.ShouldBindJSON(&house); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	house.ID = id

	if err := h.useCase.UpdateHouse(&house); err != nil {
		c.JSON(statusFromError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "House updated successfully",
		"data":    house,
	})
}

// DeleteHouse handles DELETE /api/v1/houses/:id
func (h *HouseHandler) DeleteHouse(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteHouse(id); err != nil {
		c.JSON(statusFromError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "House deleted successfully",
	})
}
