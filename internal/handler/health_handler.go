package handler

import (
	"net/http"

	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	appName         string
	hospitalService *service.HospitalService
	exposeErrors    bool
}

func NewHealthHandler(appName string, hospitalService *service.HospitalService, exposeErrors bool) *HealthHandler {
	return &HealthHandler{
		appName:         appName,
		hospitalService: hospitalService,
		exposeErrors:    exposeErrors,
	}
}

// Health reports liveness without touching the database
func (h *HealthHandler) Health(c *gin.Context) {
	utils.MessageResponse(c, http.StatusOK, utils.StatusOK, h.appName+" is running")
}

// DatabaseTest round-trips to the database and echoes its clock
func (h *HealthHandler) DatabaseTest(c *gin.Context) {
	now, err := h.hospitalService.CheckDatabase(c.Request.Context())
	if err != nil {
		respondError(c, err, h.exposeErrors, "Database connection error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   utils.StatusOK,
		"database": "Connected",
		"time":     now,
	})
}
