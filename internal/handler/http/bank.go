package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-sol-vault/internal/app"
	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
	"github.com/MKhiriev/go-sol-vault/models"
)

func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.services.Actions.Owner()
	if !ok {
		writeServiceError(w, r, service.ErrWalletNotConnected, app.MsgNoWalletConnected)
		return
	}

	bank, err := h.services.Bank.Fetch(r.Context(), owner)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFetchBankFailed)
		return
	}

	_, _ = utils.WriteJSON(w, bank, http.StatusOK)
}

func (h *Handler) createBank(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgInvalidCreateBankRequest)
		return
	}
	if err := service.ValidateBankName(req.Name); err != nil {
		writeServiceError(w, r, err, app.MsgInvalidCreateBankRequest)
		return
	}
	writeResult(w, r, h.services.Actions.CreateBank(r.Context(), req.Name))
}

func (h *Handler) depositBank(w http.ResponseWriter, r *http.Request) {
	amount, err := decodeAmount(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgInvalidBankDepositRequest)
		return
	}
	writeResult(w, r, h.services.Actions.BankDeposit(r.Context(), amount))
}

func (h *Handler) withdrawBank(w http.ResponseWriter, r *http.Request) {
	amount, err := decodeAmount(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgInvalidBankWithdrawRequest)
		return
	}
	writeResult(w, r, h.services.Actions.BankWithdraw(r.Context(), amount))
}
