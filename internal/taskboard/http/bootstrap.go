package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP creates the first administrator.
//
//	@Summary		Bootstrap the first admin
//	@Description	Creates an admin account while no account exists. Only available when a bootstrap token is configured.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Bootstrap token"
//	@Param			request				body		boardsdk.BootstrapRequest	true	"Admin account"
//	@Success		201					{object}	boardsdk.BootstrapResponse
//	@Failure		400					{object}	boardsdk.APIError	"Invalid body or weak password"
//	@Failure		401					{object}	boardsdk.APIError	"Missing or wrong bootstrap token"
//	@Failure		404					{object}	boardsdk.APIError	"Bootstrap not enabled"
//	@Failure		409					{object}	boardsdk.APIError	"Already bootstrapped"
//	@Failure		429					{object}	boardsdk.APIError
//	@Failure		500					{object}	boardsdk.APIError
//	@Router			/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slogx.FromContext(r.Context()).Info("bootstrap requested")

	if !h.BootstrapService.Enabled() {
		boardsdk.ErrBootstrapDisabled.WriteError(w)
		return
	}

	token := r.Header.Get(boardsdk.BootstrapTokenHeader)
	if token == "" {
		boardsdk.ErrBootstrapToken.WriteError(w)
		return
	}

	var req boardsdk.BootstrapRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		boardsdk.ErrInvalidRequestBody.WriteError(w)
		return
	}
	if errs := req.Validate(); errs != nil {
		writeValidation(w, errs)
		return
	}

	id, err := h.BootstrapService.Bootstrap(r.Context(), token, req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, boardsdk.BootstrapResponse{UserID: id})
}
