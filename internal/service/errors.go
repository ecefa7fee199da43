package service

import (
	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/pkg/apiclient"
)

// backendMessage returns the backend's own message for err when it sent one,
// otherwise fallback.
func backendMessage(err error, fallback string) (string, int) {
	apiErr, ok := apiclient.AsAPIError(err)
	if !ok {
		return fallback, 0
	}
	if apiErr.Message != "" {
		return apiErr.Message, apiErr.StatusCode
	}
	return fallback, apiErr.StatusCode
}

func newFetchError(op string, err error, fallback string) *domain.FetchError {
	message, status := backendMessage(err, fallback)
	return &domain.FetchError{Op: op, Message: message, StatusCode: status, Err: err}
}

func newMutationError(op string, err error, fallback string) *domain.MutationError {
	message, status := backendMessage(err, fallback)
	return &domain.MutationError{Op: op, Message: message, StatusCode: status, Err: err}
}
