package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/internal/service"
)

// viewFromPath resolves the :id parameter, writing the error response when
// the view is gone.
func (h *Handler) viewFromPath(c *gin.Context) (*service.Agenda, bool) {
	agenda, err := h.services.Views.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}
	return agenda, true
}

// @Summary Abrir una vista de agenda
// @Description Crea una vista (día o semana) y carga sus citas
// @Tags Vistas
// @Accept json
// @Produce json
// @Param input body domain.CreateViewRequest false "Fecha, tipo de vista y doctor"
// @Success 201 {object} service.AgendaSnapshot
// @Failure 400 {object} errorResponseBody
// @Failure 422 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /views [post]
func (h *Handler) openView(c *gin.Context) {
	var req domain.CreateViewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("formato de datos no válido", zap.Error(err))
			badRequestResponse(c, "formato de datos no válido")
			return
		}
	}

	agenda, err := h.services.Views.Open(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	createdResponse(c, agenda.Snapshot())
}

// @Summary Estado de una vista
// @Tags Vistas
// @Produce json
// @Param id path string true "ID de la vista"
// @Success 200 {object} service.AgendaSnapshot
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /views/{id} [get]
func (h *Handler) getView(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}
	successResponse(c, http.StatusOK, agenda.Snapshot())
}

// @Summary Cerrar una vista
// @Tags Vistas
// @Param id path string true "ID de la vista"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /views/{id} [delete]
func (h *Handler) closeView(c *gin.Context) {
	if err := h.services.Views.Close(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	messageResponse(c, http.StatusOK, "vista cerrada")
}

// @Summary Recargar las citas de la vista
// @Tags Vistas
// @Produce json
// @Param id path string true "ID de la vista"
// @Success 200 {object} service.AgendaSnapshot
// @Failure 502 {object} errorResponseBody "Error al cargar citas"
// @Security ApiKeyAuth
// @Router /views/{id}/reload [post]
func (h *Handler) reloadView(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}
	if err := agenda.Reload(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, agenda.Snapshot())
}

// @Summary Tablero de la vista
// @Description Columnas por doctor con las celdas de la rejilla ya colocadas
// @Tags Vistas
// @Produce json
// @Param id path string true "ID de la vista"
// @Success 200 {object} schedule.Board
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /views/{id}/board [get]
func (h *Handler) getBoard(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	doctors, err := h.services.Directory.Doctors(c.Request.Context())
	if err != nil {
		h.logger.Warn("tablero sin directorio de doctores", zap.String("viewID", agenda.ID()), zap.Error(err))
		doctors = nil
	}

	successResponse(c, http.StatusOK, agenda.Board(doctors))
}

func (h *Handler) navigation(c *gin.Context, move func(*service.Agenda) (domain.NavigationState, error)) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}
	if _, err := move(agenda); err != nil {
		h.handleError(c, err)
		return
	}
	successResponse(c, http.StatusOK, agenda.Snapshot())
}

// @Summary Periodo anterior
// @Tags Navegación
// @Produce json
// @Param id path string true "ID de la vista"
// @Success 200 {object} service.AgendaSnapshot
// @Security ApiKeyAuth
// @Router /views/{id}/previous [post]
func (h *Handler) previousPeriod(c *gin.Context) {
	h.navigation(c, func(a *service.Agenda) (domain.NavigationState, error) {
		return a.Previous(c.Request.Context())
	})
}

// @Summary Periodo siguiente
// @Tags Navegación
// @Produce json
// @Param id path string true "ID de la vista"
// @Success 200 {object} service.AgendaSnapshot
// @Security ApiKeyAuth
// @Router /views/{id}/next [post]
func (h *Handler) nextPeriod(c *gin.Context) {
	h.navigation(c, func(a *service.Agenda) (domain.NavigationState, error) {
		return a.Next(c.Request.Context())
	})
}

// @Summary Ir a hoy
// @Tags Navegación
// @Produce json
// @Param id path string true "ID de la vista"
// @Success 200 {object} service.AgendaSnapshot
// @Security ApiKeyAuth
// @Router /views/{id}/today [post]
func (h *Handler) goToToday(c *gin.Context) {
	h.navigation(c, func(a *service.Agenda) (domain.NavigationState, error) {
		return a.Today(c.Request.Context())
	})
}

// @Summary Cambiar tipo de vista
// @Tags Navegación
// @Accept json
// @Produce json
// @Param id path string true "ID de la vista"
// @Param input body domain.ViewTypeRequest true "day o week"
// @Success 200 {object} service.AgendaSnapshot
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /views/{id}/view-type [put]
func (h *Handler) setViewType(c *gin.Context) {
	var req domain.ViewTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de datos no válido")
		return
	}
	viewType, err := domain.ParseViewType(req.ViewType)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.navigation(c, func(a *service.Agenda) (domain.NavigationState, error) {
		return a.SetViewType(c.Request.Context(), viewType)
	})
}

// @Summary Filtrar por doctor
// @Description Un doctorId vacío muestra todos los doctores
// @Tags Navegación
// @Accept json
// @Produce json
// @Param id path string true "ID de la vista"
// @Param input body domain.DoctorFilterRequest true "Doctor"
// @Success 200 {object} service.AgendaSnapshot
// @Security ApiKeyAuth
// @Router /views/{id}/doctor [put]
func (h *Handler) setDoctorFilter(c *gin.Context) {
	var req domain.DoctorFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de datos no válido")
		return
	}

	h.navigation(c, func(a *service.Agenda) (domain.NavigationState, error) {
		return a.SetDoctorFilter(c.Request.Context(), req.DoctorID)
	})
}

type dateRequest struct {
	Date string `json:"date" binding:"required"`
}

// @Summary Ir a una fecha
// @Tags Navegación
// @Accept json
// @Produce json
// @Param id path string true "ID de la vista"
// @Param input body dateRequest true "Fecha YYYY-MM-DD"
// @Success 200 {object} service.AgendaSnapshot
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /views/{id}/date [put]
func (h *Handler) setDate(c *gin.Context) {
	var req dateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de datos no válido")
		return
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		badRequestResponse(c, "La fecha no es válida")
		return
	}

	h.navigation(c, func(a *service.Agenda) (domain.NavigationState, error) {
		return a.GoTo(c.Request.Context(), date)
	})
}

// @Summary Exportar la vista a CSV
// @Description Sube el CSV al almacenamiento y devuelve un enlace temporal
// @Tags Vistas
// @Produce json
// @Param id path string true "ID de la vista"
// @Success 201 {object} service.ExportResult
// @Failure 503 {object} errorResponseBody "Exportaciones no configuradas"
// @Security ApiKeyAuth
// @Router /views/{id}/export [post]
func (h *Handler) exportView(c *gin.Context) {
	agenda, ok := h.viewFromPath(c)
	if !ok {
		return
	}

	result, err := h.services.Export.Export(c.Request.Context(), agenda)
	if err != nil {
		h.handleError(c, err)
		return
	}
	createdResponse(c, result)
}
