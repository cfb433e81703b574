package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// writeServiceError maps service and domain errors onto the API envelope.
// Anything unrecognised is logged and reported as a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var policy *cryptox.PolicyError

	switch {
	case errors.As(err, &policy):
		boardsdk.NewAPIError(http.StatusBadRequest, policy.Reasons...).WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		boardsdk.ErrEmailTaken.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		boardsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		logAuthFailure(r, reasonInvalidToken, err)
		boardsdk.ErrInvalidToken.WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		boardsdk.ErrUserNotFound.WriteError(w)
	case errors.Is(err, service.ErrBootstrapDisabled):
		boardsdk.ErrBootstrapDisabled.WriteError(w)
	case errors.Is(err, service.ErrBootstrapUnauthorized):
		boardsdk.ErrBootstrapToken.WriteError(w)
	case errors.Is(err, service.ErrBootstrapAlready):
		boardsdk.ErrBootstrapCompleted.WriteError(w)
	case errors.Is(err, domain.ErrInvalidName):
		boardsdk.NewAPIError(http.StatusBadRequest, boardsdk.MsgNameRequired).WriteError(w)
	case errors.Is(err, domain.ErrInvalidProjectName):
		boardsdk.NewAPIError(http.StatusBadRequest, boardsdk.MsgProjectNameRequired).WriteError(w)
	case errors.Is(err, domain.ErrInvalidTaskName):
		boardsdk.NewAPIError(http.StatusBadRequest, boardsdk.MsgTaskNameRequired).WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		boardsdk.ErrInternal.WriteError(w)
	}
}

// writeValidation reports request shape errors as a 400.
func writeValidation(w http.ResponseWriter, msgs []string) {
	boardsdk.NewAPIError(http.StatusBadRequest, msgs...).WriteError(w)
}
