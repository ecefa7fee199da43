package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JBorrsad/odoonto-mobile/internal/schedule"
)

// @Summary Doctores
// @Tags Directorio
// @Produce json
// @Success 200 {array} domain.Doctor
// @Failure 502 {object} errorResponseBody "Error al cargar datos"
// @Security ApiKeyAuth
// @Router /doctors [get]
func (h *Handler) getDoctors(c *gin.Context) {
	doctors, err := h.services.Directory.Doctors(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, doctors)
}

// @Summary Pacientes
// @Tags Directorio
// @Produce json
// @Success 200 {array} domain.Patient
// @Failure 502 {object} errorResponseBody "Error al cargar datos"
// @Security ApiKeyAuth
// @Router /patients [get]
func (h *Handler) getPatients(c *gin.Context) {
	patients, err := h.services.Directory.Patients(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, patients)
}

// @Summary Opciones del formulario
// @Description Doctores, pacientes y estados para los selectores del formulario
// @Tags Formulario
// @Produce json
// @Success 200 {object} domain.FormOptions
// @Failure 502 {object} errorResponseBody "Error al cargar datos"
// @Security ApiKeyAuth
// @Router /form-options [get]
func (h *Handler) getFormOptions(c *gin.Context) {
	options, err := h.services.Directory.FormOptions(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, options)
}

// @Summary Duraciones disponibles
// @Tags Formulario
// @Produce json
// @Success 200 {array} schedule.DurationOption
// @Router /durations [get]
func (h *Handler) getDurations(c *gin.Context) {
	successResponse(c, http.StatusOK, schedule.DurationOptions())
}

// @Summary Vaciar la caché del directorio
// @Tags Directorio
// @Success 200 {object} messageResponseType
// @Security ApiKeyAuth
// @Router /directory/refresh [post]
func (h *Handler) refreshDirectory(c *gin.Context) {
	if err := h.services.Directory.Refresh(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}
	messageResponse(c, http.StatusOK, "directorio actualizado")
}
