package server

import (
	"smarthome-server/confs"
	"smarthome-server/db"
	"smarthome-server/handlers"
	httpHandler "smarthome-server/handlers/http"
	"smarthome-server/repositories"
	"smarthome-server/services"
	"smarthome-server/usecases"
	"smarthome-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

// requestID tags every response with an X-Request-ID, generating one when
// the client did not supply it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // Allow all origins for development
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	s.app.Use(cors.New(config))
	s.app.Use(requestID())

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	deviceRepo := repositories.NewDevicePgRepository(s.db)
	securityLogRepo := repositories.NewSecurityLogPgRepository(s.db)
	energyRepo := repositories.NewEnergyConsumptionPgRepository(s.db)
	houseRepo := repositories.NewHousePgRepository(s.db)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, deviceRepo, houseRepo)
	deviceUseCase := usecases.NewDeviceUseCase(deviceRepo, userRepo, securityLogRepo, energyRepo)
	securityLogUseCase := usecases.NewSecurityLogUseCase(securityLogRepo, deviceRepo)
	energyUseCase := usecases.NewEnergyConsumptionUseCase(energyRepo, deviceRepo)
	houseUseCase := usecases.NewHouseUseCase(houseRepo, userRepo)

	// Aggregation engine
	analytics := services.NewAnalyticsService(userRepo, deviceRepo, securityLogRepo, energyRepo, houseRepo)

	// WebSocket manager for the live security-event feed
	manager := ws.NewManager()
	feedHandler := handlers.NewFeedHandler(manager)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	deviceHandler := httpHandler.NewDeviceHandler(deviceUseCase)
	securityLogHandler := httpHandler.NewSecurityLogHandler(securityLogUseCase, manager)
	energyHandler := httpHandler.NewEnergyConsumptionHandler(energyUseCase)
	houseHandler := httpHandler.NewHouseHandler(houseUseCase)
	analyticsHandler := httpHandler.NewAnalyticsHandler(analytics)
	chartHandler := httpHandler.NewChartHandler(analytics)
	seedHandler := httpHandler.NewSeedHandler(userUseCase, deviceUseCase, securityLogUseCase, energyUseCase, houseUseCase)
	loginHandler := httpHandler.NewLoginHandler(userUseCase)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// User routes
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.GetAllUsers)
			users.GET("/:id/devices", userHandler.GetUserDevices)
			users.GET("/:id/houses", userHandler.GetUserHouses)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Device routes
		devices := api.Group("/devices")
		{
			devices.POST("", deviceHandler.CreateDevice)
			devices.GET("", deviceHandler.GetAllDevices)
			devices.GET("/:id/security-logs", deviceHandler.GetDeviceSecurityLogs)
			devices.GET("/:id/energy-consumptions", deviceHandler.GetDeviceEnergyConsumptions)
			devices.GET("/:id", deviceHandler.GetDevice)
			devices.PUT("/:id", deviceHandler.UpdateDevice)
			devices.DELETE("/:id", deviceHandler.DeleteDevice)
		}

		// Security log routes
		securityLogs := api.Group("/security-logs")
		{
			securityLogs.POST("", securityLogHandler.CreateSecurityLog)
			securityLogs.GET("", securityLogHandler.GetAllSecurityLogs)
			securityLogs.GET("/:id", securityLogHandler.GetSecurityLog)
			securityLogs.DELETE("/:id", securityLogHandler.DeleteSecurityLog)
		}

		// Energy consumption routes
		energy := api.Group("/energy-consumptions")
		{
			energy.POST("", energyHandler.CreateEnergyConsumption)
			energy.GET("", energyHandler.GetAllEnergyConsumptions)
			energy.GET("/:id", energyHandler.GetEnergyConsumption)
			energy.PUT("/:id", energyHandler.UpdateEnergyConsumption)
			energy.DELETE("/:id", energyHandler.DeleteEnergyConsumption)
		}

		// House routes
		houses := api.Group("/houses")
		{
			houses.POST("", houseHandler.CreateHouse)
			houses.GET("", houseHandler.GetAllHouses)
			houses.GET("/:id", houseHandler.GetHouse)
			houses.PUT("/:id", houseHandler.UpdateHouse)
			houses.DELETE("/:id", houseHandler.DeleteHouse)
		}

		// Analytics routes
		analyticsGroup := api.Group("/analytics")
		{
			analyticsGroup.GET("/device-usage", analyticsHandler.DeviceUsageFrequency)
			analyticsGroup.GET("/peak-hours", analyticsHandler.PeakHourDevices)
			analyticsGroup.GET("/top-consumers", analyticsHandler.TopEnergyConsumers)
			analyticsGroup.GET("/devices-per-user", analyticsHandler.DevicesPerUser)
			analyticsGroup.GET("/hourly-usage", analyticsHandler.HourlyUsageByDevice)
			analyticsGroup.GET("/house-types", analyticsHandler.HouseTypeReport)
			analyticsGroup.GET("/activity-by-hour", analyticsHandler.ActivityByHour)
			analyticsGroup.GET("/consumption", analyticsHandler.ConsumptionPerDevice)
		}

		// Chart routes
		charts := api.Group("/charts")
		{
			charts.GET("/consumption.png", chartHandler.ConsumptionChart)
			charts.GET("/house-types.png", chartHandler.HouseTypeChart)
		}

		// Demo data seeding
		api.POST("/seed", seedHandler.Seed)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", loginHandler.Login)
		}
	}

	s.app.GET("/ws", feedHandler.HandleSecurityFeed)

	addr := confs.Getenv("HTTP_ADDR", "0.0.0.0:3536")
	if err := s.app.Run(addr); err != nil {
		panic(err)
	}
}
