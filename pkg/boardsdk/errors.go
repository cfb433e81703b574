package boardsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// APIError is the {"errors": [...]} body every failing endpoint returns.
// Handlers write it with WriteError, the client hands it back from every call.
type APIError struct {
	StatusCode int      `json:"-"`
	Errors     []string `json:"errors"`
}

func NewAPIError(status int, messages ...string) *APIError {
	return &APIError{StatusCode: status, Errors: messages}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), strings.Join(e.Errors, "; "))
}

// Is matches another *APIError with the same status and messages, so the
// predefined values below work with errors.Is on the client side.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && slices.Equal(e.Errors, t.Errors)
}

// WriteError writes the error as the HTTP response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)

	errs := e.Errors
	if errs == nil {
		errs = []string{}
	}
	_ = json.NewEncoder(w).Encode(struct {
		Errors []string `json:"errors"`
	}{errs})
}

// Errors the API returns. ErrInvalidToken covers malformed, tampered and
// expired tokens alike.
var (
	ErrAuthenticationRequired = NewAPIError(http.StatusUnauthorized, "Authentication required")
	ErrInvalidToken           = NewAPIError(http.StatusUnauthorized, "Invalid or expired token")
	ErrAdminRequired          = NewAPIError(http.StatusForbidden, "Admin access required")
	ErrInvalidCredentials     = NewAPIError(http.StatusUnauthorized, "Invalid email or password")
	ErrUserNotFound           = NewAPIError(http.StatusUnauthorized, "User not found")
	ErrEmailTaken             = NewAPIError(http.StatusBadRequest, "User with this email already exists")
	ErrInvalidRequestBody     = NewAPIError(http.StatusBadRequest, "Invalid request body")
	ErrInvalidQuery           = NewAPIError(http.StatusBadRequest, "page and limit must be integers")
	ErrTooManyRequests        = NewAPIError(http.StatusTooManyRequests, "Too many requests")
	ErrInternal               = NewAPIError(http.StatusInternalServerError, "Internal server error")
	ErrBootstrapDisabled      = NewAPIError(http.StatusNotFound, "Bootstrap is not enabled")
	ErrBootstrapToken         = NewAPIError(http.StatusUnauthorized, "Invalid bootstrap token")
	ErrBootstrapCompleted     = NewAPIError(http.StatusConflict, "System has already been bootstrapped")
)

func parseErrorResponse(status int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Errors) > 0 {
		apiErr.StatusCode = status
		return &apiErr
	}

	// Not our envelope, e.g. a proxy page or the mux's plain-text 404.
	return &APIError{
		StatusCode: status,
		Errors:     []string{fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))},
	}
}
