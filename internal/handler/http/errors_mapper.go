package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sol-vault/internal/adapter"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/internal/store"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
	"github.com/MKhiriev/go-sol-vault/models"
)

var errorStatusMap = map[error]int{
	models.ErrInvalidAmount:   http.StatusBadRequest,
	models.ErrInvalidBankName: http.StatusBadRequest,
	ErrInvalidJSON:            http.StatusBadRequest,
	ErrInvalidLimit:           http.StatusBadRequest,

	service.ErrWalletNotConnected:  http.StatusConflict,
	service.ErrProviderUnavailable: http.StatusServiceUnavailable,
	service.ErrBankNotFound:        http.StatusNotFound,
	service.ErrBlockhashExpired:    http.StatusBadGateway,
	service.ErrTransactionFailed:   http.StatusUnprocessableEntity,

	adapter.ErrBadRequest:          http.StatusBadGateway,
	adapter.ErrUnauthorized:        http.StatusBadGateway,
	adapter.ErrForbidden:           http.StatusBadGateway,
	adapter.ErrNotFound:            http.StatusBadGateway,
	adapter.ErrTooManyRequests:     http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrServiceUnavailable:  http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrInvalidResponse:     http.StatusBadGateway,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusFromError maps a service error to a response status and, for program
// errors, the program's custom error code.
func statusFromError(err error) (int, uint32) {
	var programErr *models.ProgramError
	switch {
	case service.IsNotInitialized(err):
		errors.As(err, &programErr)
		return http.StatusConflict, programErr.Code
	case errors.As(err, &programErr):
		return http.StatusUnprocessableEntity, programErr.Code
	}

	var rpcErr *adapter.RPCError
	if errors.As(err, &rpcErr) {
		return http.StatusBadGateway, 0
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, 0
		}
	}
	return http.StatusInternalServerError, 0
}

// writeServiceError logs err and answers with the mapped status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status, code := statusFromError(err)

	log := logger.FromRequest(r)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(message)

	utils.WriteError(w, r, status, err.Error(), code)
}
