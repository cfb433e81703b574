package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
	cookies     sessionCookies
	metrics     *authMetrics
}

func userResponse(u domain.User) boardsdk.UserResponse {
	return boardsdk.UserResponse{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  u.Role().String(),
	}
}

// HandleRegister creates a member account.
//
//	@Summary		Register a user
//	@Description	Creates a member account. Password strength failures list every violated rule.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.RegisterRequest	true	"New account"
//	@Success		200		{object}	boardsdk.RegisterResponse
//	@Failure		400		{object}	boardsdk.APIError	"Validation failed or email already registered"
//	@Failure		500		{object}	boardsdk.APIError
//	@Router			/users/register [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req boardsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		boardsdk.ErrInvalidRequestBody.WriteError(w)
		return
	}
	if errs := req.Validate(); errs != nil {
		writeValidation(w, errs)
		return
	}

	id, err := h.UserService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.RegisterResponse{UserID: id})
}

// HandleLogin checks credentials and sets the session cookies.
//
//	@Summary		Log in
//	@Description	Verifies email and password and sets the accessToken and refreshToken cookies.
//	@Description	An unknown email and a wrong password produce the same response.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	boardsdk.LoginResponse
//	@Failure		400		{object}	boardsdk.APIError	"Malformed body"
//	@Failure		401		{object}	boardsdk.APIError	"Invalid email or password"
//	@Failure		500		{object}	boardsdk.APIError
//	@Router			/users/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req boardsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		boardsdk.ErrInvalidRequestBody.WriteError(w)
		return
	}
	if errs := req.Validate(); errs != nil {
		writeValidation(w, errs)
		return
	}

	res, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.metrics.login("failure")
		}
		writeServiceError(w, r, err)
		return
	}

	h.metrics.login("success")
	h.cookies.set(w, res.Tokens)
	httpx.WriteJSON(w, http.StatusOK, boardsdk.LoginResponse{User: userResponse(res.User)})
}

// HandleLogout clears the session cookies.
//
//	@Summary	Log out
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	boardsdk.MessageResponse
//	@Router		/users/logout [post].
func (h *UsersHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.cookies.clear(w)
	httpx.WriteJSON(w, http.StatusOK, boardsdk.MessageResponse{Message: "Logged out successfully"})
}

// HandleRefresh swaps the refresh cookie for a new pair.
//
//	@Summary		Refresh the session
//	@Description	Uses the refreshToken cookie to issue new cookies. Fails once the account's token version has moved on.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	boardsdk.LoginResponse
//	@Failure		401	{object}	boardsdk.APIError	"Missing, invalid or outdated refresh token"
//	@Failure		500	{object}	boardsdk.APIError
//	@Router			/users/refresh [post].
func (h *UsersHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(boardsdk.RefreshTokenCookie)
	if err != nil || c.Value == "" {
		logAuthFailure(r, reasonMissingToken, http.ErrNoCookie)
		boardsdk.ErrAuthenticationRequired.WriteError(w)
		return
	}

	res, err := h.UserService.Refresh(r.Context(), c.Value)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.cookies.set(w, res.Tokens)
	httpx.WriteJSON(w, http.StatusOK, boardsdk.LoginResponse{User: userResponse(res.User)})
}

// HandleMe returns the caller's account.
//
//	@Summary	Current user
//	@Tags		Users
//	@Security	CookieAuth
//	@Produce	json
//	@Success	200	{object}	boardsdk.UserResponse
//	@Failure	401	{object}	boardsdk.APIError	"Not logged in, bad token or account gone"
//	@Failure	500	{object}	boardsdk.APIError
//	@Router		/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		boardsdk.ErrAuthenticationRequired.WriteError(w)
		return
	}

	u, err := h.UserService.Me(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(u))
}
