package httpHandler

import (
	"net/http"
	"strconv"
	"time"

	"smarthome-server/services"
	"smarthome-server/usecases"

	"github.com/gin-gonic/gin"
)

// SeedHandler triggers the synthetic data generator so the analytics
// endpoints have something to chew on in a fresh environment.
type SeedHandler struct {
	users   *usecases.UserUseCase
	devices *usecases.DeviceUseCase
	logs    *usecases.SecurityLogUseCase
	energy  *usecases.EnergyConsumptionUseCase
	houses  *usecases.HouseUseCase
}

func NewSeedHandler(users *usecases.UserUseCase, devices *usecases.DeviceUseCase,
	logs *usecases.SecurityLogUseCase, energy *usecases.EnergyConsumptionUseCase,
	houses *usecases.HouseUseCase) *SeedHandler {
	return &SeedHandler{
		users:   users,
		devices: devices,
		logs:    logs,
		energy:  energy,
		houses:  houses,
	}
}

// Seed handles POST /api/v1/seed. An optional ?seed=N makes the generated
// data reproducible.
func (h *SeedHandler) Seed(c *gin.Context) {
	seed := time.Now().UnixNano()
	if raw := c.Query("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "seed must be an integer",
			})
			return
		}
		seed = parsed
	}

	seeder := services.NewSeeder(seed, h.users, h.devices, h.logs, h.energy, h.houses)
	summary, err := seeder.Run()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Demo data seeded successfully",
		"data":    summary,
	})
}
