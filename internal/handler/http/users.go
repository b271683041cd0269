package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.DirectoryService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		status, message := statusFromError(err)
		utils.WriteJSON(w, errorResponse{Error: message}, status)
		return
	}

	if _, err = utils.WriteJSON(w, users, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error writing users")
	}
}

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Error string `json:"error"`
}
