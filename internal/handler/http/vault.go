package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-sol-vault/internal/app"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
	"github.com/MKhiriev/go-sol-vault/models"
)

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.services.Actions.Owner()
	if !ok {
		writeServiceError(w, r, service.ErrWalletNotConnected, app.MsgNoWalletConnected)
		return
	}

	info, err := h.services.Vault.State(r.Context(), owner)
	if err != nil {
		writeServiceError(w, r, err, app.MsgReadVaultFailed)
		return
	}

	_, _ = utils.WriteJSON(w, info, http.StatusOK)
}

func (h *Handler) initializeVault(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.services.Actions.InitializeVault(r.Context()))
}

func (h *Handler) depositVault(w http.ResponseWriter, r *http.Request) {
	amount, err := decodeAmount(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgInvalidDepositRequest)
		return
	}
	writeResult(w, r, h.services.Actions.Deposit(r.Context(), amount))
}

func (h *Handler) withdrawVault(w http.ResponseWriter, r *http.Request) {
	amount, err := decodeAmount(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgInvalidWithdrawRequest)
		return
	}
	writeResult(w, r, h.services.Actions.Withdraw(r.Context(), amount))
}

func decodeAmount(r *http.Request) (models.Lamports, error) {
	var req models.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return models.ParseSOL(req.Amount)
}

// writeResult answers 200 for a successful operation and the mapped error
// status otherwise. The body is an OperationResponse in both cases.
func writeResult(w http.ResponseWriter, r *http.Request, result models.OperationResult) {
	status := http.StatusOK
	if !result.OK() {
		status, _ = statusFromError(result.Err)
		logger.FromRequest(r).Warn().Err(result.Err).Int("status", status).Str("message", result.Message).Msg(app.MsgOperationFailed)
	}
	_, _ = utils.WriteJSON(w, models.NewOperationResponse(result), status)
}
