package handler

import (
	"errors"
	"log"
	"net/http"

	"hospital-management-api/internal/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

const genericErrorMessage = "Internal server error"

type HospitalHandler struct {
	hospitalService *service.HospitalService
	exposeErrors    bool
}

// NewHospitalHandler builds the data endpoints. With exposeErrors unset,
// store failures are logged and clients receive a generic message.
func NewHospitalHandler(hospitalService *service.HospitalService, exposeErrors bool) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
		exposeErrors:    exposeErrors,
	}
}

// GetHospital returns the first hospital on record
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	hospital, err := h.hospitalService.GetHospital(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			utils.StatusResponse(c, "No hospitals found", nil)
			return
		}
		respondError(c, err, h.exposeErrors, "Error fetching hospital")
		return
	}

	utils.SuccessResponse(c, hospital)
}

// GetDoctors lists doctors by name
func (h *HospitalHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.hospitalService.ListDoctors(c.Request.Context())
	if err != nil {
		respondError(c, err, h.exposeErrors, "Error fetching doctors")
		return
	}

	utils.SuccessResponse(c, doctors)
}

// GetPatients lists patients by name
func (h *HospitalHandler) GetPatients(c *gin.Context) {
	patients, err := h.hospitalService.ListPatients(c.Request.Context())
	if err != nil {
		respondError(c, err, h.exposeErrors, "Error fetching patients")
		return
	}

	utils.SuccessResponse(c, patients)
}

// GetAppointments lists appointments, most recent day first
func (h *HospitalHandler) GetAppointments(c *gin.Context) {
	appointments, err := h.hospitalService.ListAppointments(c.Request.Context())
	if err != nil {
		respondError(c, err, h.exposeErrors, "Error fetching appointments")
		return
	}

	utils.SuccessResponse(c, appointments)
}

// respondError logs err and writes a 500 envelope. The unavailable-store
// message carries no internal detail and is always shown.
func respondError(c *gin.Context, err error, expose bool, logPrefix string) {
	log.Printf("%s: %v", logPrefix, err)

	message := err.Error()
	if !expose && !errors.Is(err, service.ErrStoreUnavailable) {
		message = genericErrorMessage
	}
	utils.ErrorResponse(c, http.StatusInternalServerError, message)
}
