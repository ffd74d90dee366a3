package http

import (
	"net/http"

	"github.com/MKhiriev/go-sol-vault/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.settings.BuildInfo, http.StatusOK)
}
