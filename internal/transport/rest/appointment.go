package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/internal/schedule"
	"github.com/JBorrsad/odoonto-mobile/pkg/validator"
)

// @Summary Citas de la vista
// @Description Recarga y devuelve las citas del rango visible
// @Tags Citas
// @Produce json
// @Param id path string true "ID de la vista"
// @Success 200 {array} domain.Appointment
// @Failure 502 {object} errorResponseBody "Error al cargar citas"
// @Security ApiKeyAuth
// @Router /views/{id}/appointments [get]
func (h *Handler) listAppointments(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	appointments, err := agenda.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, appointments)
}

// @Summary Crear una cita
// @Description Valida el formulario y crea la cita en estado pendiente
// @Tags Citas
// @Accept json
// @Produce json
// @Param id path string true "ID de la vista"
// @Param input body domain.AppointmentForm true "Formulario de la cita"
// @Success 201 {object} domain.Appointment
// @Failure 409 {object} errorResponseBody "Operación en curso"
// @Failure 422 {object} errorResponseBody "Errores de validación por campo"
// @Failure 502 {object} errorResponseBody "Error al crear la cita"
// @Security ApiKeyAuth
// @Router /views/{id}/appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	var form domain.AppointmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("formato de datos no válido", zap.Error(err))
		badRequestResponse(c, "formato de datos no válido")
		return
	}

	appointment, err := agenda.CreateFromForm(c.Request.Context(), form)
	if err != nil {
		h.handleError(c, err)
		return
	}
	createdResponse(c, appointment)
}

// @Summary Obtener una cita
// @Tags Citas
// @Produce json
// @Param id path string true "ID de la vista"
// @Param appointmentId path string true "ID de la cita"
// @Success 200 {object} schedule.CalendarEntry
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /views/{id}/appointments/{appointmentId} [get]
func (h *Handler) getAppointment(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	appointment, err := agenda.Get(c.Request.Context(), c.Param("appointmentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, schedule.NewCalendarEntry(*appointment))
}

// @Summary Formulario de edición
// @Description Borrador del formulario con los datos actuales de la cita
// @Tags Formulario
// @Produce json
// @Param id path string true "ID de la vista"
// @Param appointmentId path string true "ID de la cita"
// @Success 200 {object} domain.AppointmentForm
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /views/{id}/appointments/{appointmentId}/form [get]
func (h *Handler) getAppointmentForm(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	form, err := agenda.EditForm(c.Request.Context(), c.Param("appointmentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, form)
}

// @Summary Actualizar una cita
// @Tags Citas
// @Accept json
// @Produce json
// @Param id path string true "ID de la vista"
// @Param appointmentId path string true "ID de la cita"
// @Param input body domain.AppointmentForm true "Formulario de la cita"
// @Success 200 {object} domain.Appointment
// @Failure 409 {object} errorResponseBody
// @Failure 422 {object} errorResponseBody
// @Failure 502 {object} errorResponseBody "Error al actualizar la cita"
// @Security ApiKeyAuth
// @Router /views/{id}/appointments/{appointmentId} [put]
func (h *Handler) updateAppointment(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	var form domain.AppointmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("formato de datos no válido", zap.Error(err))
		badRequestResponse(c, "formato de datos no válido")
		return
	}

	appointment, err := agenda.UpdateFromForm(c.Request.Context(), c.Param("appointmentId"), form)
	if err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, appointment)
}

// @Summary Eliminar una cita
// @Tags Citas
// @Param id path string true "ID de la vista"
// @Param appointmentId path string true "ID de la cita"
// @Success 200 {object} messageResponseType
// @Failure 409 {object} errorResponseBody
// @Failure 502 {object} errorResponseBody "Error al eliminar la cita"
// @Security ApiKeyAuth
// @Router /views/{id}/appointments/{appointmentId} [delete]
func (h *Handler) deleteAppointment(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	if err := agenda.Delete(c.Request.Context(), c.Param("appointmentId")); err != nil {
		h.handleError(c, err)
		return
	}
	messageResponse(c, http.StatusOK, "cita eliminada")
}

// @Summary Confirmar una cita
// @Tags Citas
// @Produce json
// @Param id path string true "ID de la vista"
// @Param appointmentId path string true "ID de la cita"
// @Success 200 {object} domain.Appointment
// @Failure 409 {object} errorResponseBody
// @Failure 502 {object} errorResponseBody "Error al confirmar la cita"
// @Security ApiKeyAuth
// @Router /views/{id}/appointments/{appointmentId}/confirm [post]
func (h *Handler) confirmAppointment(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	appointment, err := agenda.Confirm(c.Request.Context(), c.Param("appointmentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, appointment)
}

// @Summary Cancelar una cita
// @Tags Citas
// @Accept json
// @Param id path string true "ID de la vista"
// @Param appointmentId path string true "ID de la cita"
// @Param input body domain.CancelRequest false "Motivo"
// @Success 200 {object} messageResponseType
// @Failure 409 {object} errorResponseBody
// @Failure 502 {object} errorResponseBody "Error al cancelar la cita"
// @Security ApiKeyAuth
// @Router /views/{id}/appointments/{appointmentId}/cancel [post]
func (h *Handler) cancelAppointment(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	var req domain.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequestResponse(c, "formato de datos no válido")
			return
		}
	}

	if err := agenda.Cancel(c.Request.Context(), c.Param("appointmentId"), req.Reason); err != nil {
		h.handleError(c, err)
		return
	}
	messageResponse(c, http.StatusOK, "cita cancelada")
}

// @Summary Cambiar el estado de una cita
// @Tags Citas
// @Accept json
// @Produce json
// @Param id path string true "ID de la vista"
// @Param appointmentId path string true "ID de la cita"
// @Param input body domain.StatusChangeRequest true "Nuevo estado"
// @Success 200 {object} domain.Appointment
// @Failure 409 {object} errorResponseBody "Cambio de estado no permitido"
// @Failure 422 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /views/{id}/appointments/{appointmentId}/status [put]
func (h *Handler) changeAppointmentStatus(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	var req domain.StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de datos no válido")
		return
	}
	status, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		verr := domain.NewValidationError()
		verr.Add(schedule.FieldStatus, "El estado no es válido")
		validationResponse(c, verr)
		return
	}

	appointment, err := agenda.ChangeStatus(c.Request.Context(), c.Param("appointmentId"), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, appointment)
}

// @Summary Pulsar una franja libre
// @Description Devuelve el formulario de nueva cita con doctor, fecha y hora de la franja
// @Tags Formulario
// @Accept json
// @Produce json
// @Param id path string true "ID de la vista"
// @Param input body domain.SlotClickRequest true "Doctor y franja (0-24)"
// @Success 200 {object} domain.AppointmentForm
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /views/{id}/slots [post]
func (h *Handler) clickSlot(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	var req domain.SlotClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de datos no válido")
		return
	}

	form, err := agenda.DraftForSlot(req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, form)
}

// @Summary Historial de una cita
// @Description Operaciones registradas sobre la cita, más recientes primero
// @Tags Citas
// @Produce json
// @Param appointmentId path string true "ID de la cita"
// @Param limit query int false "Máximo de entradas"
// @Success 200 {array} domain.JournalEntry
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /appointments/{appointmentId}/history [get]
func (h *Handler) getAppointmentHistory(c *gin.Context) {
	appointmentID := c.Param("appointmentId")
	if !validator.ValidateID(appointmentID) {
		badRequestResponse(c, "identificador de cita no válido")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	entries, err := h.services.History.List(c.Request.Context(), appointmentID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	successResponse(c, http.StatusOK, entries)
}
