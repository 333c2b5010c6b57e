package httpHandler

import (
	"encoding/json"
	"net/http"

	"smarthome-server/entities"
	"smarthome-server/usecases"
	"smarthome-server/ws"

	"github.com/gin-gonic/gin"
)

// SecurityLogHandler serves the security log CRUD and pushes every new event
// onto the live websocket feed.
type SecurityLogHandler struct {
	useCase *usecases.SecurityLogUseCase
	mgr     *ws.Manager
}

func NewSecurityLogHandler(useCase *usecases.SecurityLogUseCase, mgr *ws.Manager) *SecurityLogHandler {
	return &SecurityLogHandler{
		useCase: useCase,
		mgr:     mgr,
	}
}

// CreateSecurityLog handles POST /api/v1/security-logs
func (h *SecurityLogHandler) CreateSecurityLog(c *gin.Context) {
	var logEntry entities.SecurityLog

	if err := c.ShouldBindJSON(&logEntry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.CreateSecurityLog(&logEntry); err != nil {
		c.JSON(statusFromError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	if payload, err := json.Marshal(logEntry); err == nil {
		h.mgr.Broadcast(payload)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Security log created successfully",
		"data":    logEntry,
	})
}

// GetSecurityLog handles GET /api/v1/security-logs/:id
func (h *SecurityLogHandler) GetSecurityLog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	logEntry, err := h.useCase.GetSecurityLog(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Security log not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": logEntry,
	})
}

// GetAllSecurityLogs handles GET /api/v1/security-logs
func (h *SecurityLogHandler) GetAllSecurityLogs(c *gin.Context) {
	logs, err := h.useCase.GetAllSecurityLogs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve security logs",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  logs,
		"count": len(logs),
	})
}

// DeleteSecurityLog handles DELETE /api/v1/security-logs/:id
func (h *SecurityLogHandler) DeleteSecurityLog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteSecurityLog(id); err != nil {
		c.JSON(statusFromError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Security log deleted successfully",
	})
}
