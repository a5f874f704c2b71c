package router

import (
	"net/http"

	"hospital-management-api/internal/config"
	"hospital-management-api/internal/handler"
	"hospital-management-api/internal/middleware"
	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the middleware chain and every endpoint. While
// hospitalService has no store attached, data endpoints answer 500 and health
// checks keep working.
func NewRouter(cfg *config.Config, hospitalService *service.HospitalService) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Server.ExposeErrors))
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.BodyParser(middleware.DefaultBodyLimit))

	healthHandler := handler.NewHealthHandler(cfg.Server.AppName, hospitalService, cfg.Server.ExposeErrors)
	hospitalHandler := handler.NewHospitalHandler(hospitalService, cfg.Server.ExposeErrors)

	r.GET("/", healthHandler.Health)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/db-test", healthHandler.DatabaseTest)
		api.GET("/hospital", hospitalHandler.GetHospital)
		api.GET("/doctors", hospitalHandler.GetDoctors)
		api.GET("/patients", hospitalHandler.GetPatients)
		api.GET("/appointments", hospitalHandler.GetAppointments)
	}

	r.NoRoute(func(c *gin.Context) {
		utils.MessageResponse(c, http.StatusNotFound, utils.StatusError, "Endpoint not found")
	})

	return r
}
