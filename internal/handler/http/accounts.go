package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-sol-vault/internal/app"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
	"github.com/MKhiriev/go-sol-vault/models"
)

const defaultOperationsLimit = 50

func (h *Handler) getAccounts(w http.ResponseWriter, r *http.Request) {
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))

	snapshot, err := h.services.Actions.Accounts(r.Context(), refresh)
	if err != nil {
		writeServiceError(w, r, err, app.MsgListAccountsFailed)
		return
	}

	_, _ = utils.WriteJSON(w, snapshot, http.StatusOK)
}

func (h *Handler) getOperations(w http.ResponseWriter, r *http.Request) {
	limit := uint64(defaultOperationsLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeServiceError(w, r, ErrInvalidLimit, app.MsgInvalidOperationsRequest)
			return
		}
		limit = parsed
	}

	operations, err := h.services.Actions.Operations(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err, app.MsgListOperationsFailed)
		return
	}
	if operations == nil {
		operations = []models.Operation{}
	}

	_, _ = utils.WriteJSON(w, operations, http.StatusOK)
}
