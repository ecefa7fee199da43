package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/pkg/auth"
)

type errorResponseBody struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Code    int               `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type successResponseBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type messageResponseType struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func messageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageResponseType{
		Status:  "success",
		Message: message,
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func unauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "se requiere autenticación"
	}
	errorResponse(c, http.StatusUnauthorized, message)
}

func validationResponse(c *gin.Context, verr *domain.ValidationError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponseBody{
		Status:  "error",
		Message: "Revise los datos del formulario",
		Code:    http.StatusUnprocessableEntity,
		Fields:  verr.Fields,
	})
}

// errorStatus maps service errors onto HTTP status codes. Backend 4xx answers
// to mutations are passed through, anything else from the backend is a 502.
func errorStatus(err error) int {
	var (
		verr        *domain.ValidationError
		fetchErr    *domain.FetchError
		mutationErr *domain.MutationError
	)

	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrOperationInProgress),
		errors.Is(err, domain.ErrTransitionNotAllowed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrViewNotFound),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrExportsDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidSlot),
		errors.Is(err, domain.ErrInvalidViewType):
		return http.StatusBadRequest
	case errors.As(err, &mutationErr):
		if mutationErr.StatusCode >= 400 && mutationErr.StatusCode < 500 {
			return mutationErr.StatusCode
		}
		return http.StatusBadGateway
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	var (
		fetchErr    *domain.FetchError
		mutationErr *domain.MutationError
	)

	switch {
	case errors.As(err, &mutationErr):
		return mutationErr.Message
	case errors.As(err, &fetchErr):
		return fetchErr.Message
	case errors.Is(err, domain.ErrNotFound):
		return domain.ErrNotFound.Error()
	default:
		return err.Error()
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		validationResponse(c, verr)
		return
	}

	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		errorResponse(c, status, "error interno del servidor")
		return
	}
	errorResponse(c, status, errorMessage(err))
}
