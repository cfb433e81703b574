package boardsdk

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validation messages for request bodies. Password strength is not checked
// here; the server's password policy reports its own messages.
const (
	MsgNameRequired        = "Name is required"
	MsgInvalidEmail        = "Invalid email address"
	MsgPasswordRequired    = "Password is required"
	MsgProjectNameRequired = "Project name is required"
	MsgProjectNameTooLong  = "Project name must be 255 characters or less"
	MsgTaskNameRequired    = "Task name is required"
	MsgTaskNameTooLong     = "Task name must be 255 characters or less"
)

// Name limits are counted in characters.
const (
	MaxProjectNameLength = 255
	MaxTaskNameLength    = 255
)

// ============================================================================
// Users
// ============================================================================

type RegisterRequest struct {
	Name     string `json:"name"     example:"Test User"`
	Email    string `json:"email"    example:"test@example.com"`
	Password string `json:"password" example:"StrongPassword123!"`
}

// Validate returns the shape errors of the request, nil when there are none.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, MsgNameRequired)
	}
	if !validEmail(r.Email) {
		errs = append(errs, MsgInvalidEmail)
	}
	return errs
}

type RegisterResponse struct {
	UserID string `json:"userId" example:"01J9Z3Q6W8E3M4N5P6R7S8T9VA"`
}

type LoginRequest struct {
	Email    string `json:"email"    example:"test@example.com"`
	Password string `json:"password" example:"StrongPassword123!"`
}

func (r LoginRequest) Validate() []string {
	var errs []string
	if !validEmail(r.Email) {
		errs = append(errs, MsgInvalidEmail)
	}
	if r.Password == "" {
		errs = append(errs, MsgPasswordRequired)
	}
	return errs
}

// UserResponse is the public view of an account. Role is "member" or "admin".
type UserResponse struct {
	ID    string `json:"id"    example:"01J9Z3Q6W8E3M4N5P6R7S8T9VA"`
	Name  string `json:"name"  example:"Test User"`
	Email string `json:"email" example:"test@example.com"`
	Role  string `json:"role"  example:"member" enums:"member,admin"`
}

// LoginResponse is returned by login and refresh. The tokens themselves only
// travel in cookies.
type LoginResponse struct {
	User UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// ============================================================================
// Projects
// ============================================================================

type CreateProjectRequest struct {
	Name string `json:"name" example:"Website relaunch"`
}

func (r CreateProjectRequest) Validate() []string {
	name := strings.TrimSpace(r.Name)
	switch {
	case name == "":
		return []string{MsgProjectNameRequired}
	case utf8.RuneCountInString(name) > MaxProjectNameLength:
		return []string{MsgProjectNameTooLong}
	}
	return nil
}

type ProjectResponse struct {
	ID        string `json:"id"        example:"01J9Z3R0B1C2D3E4F5G6H7J8KM"`
	Name      string `json:"name"      example:"Website relaunch"`
	CreatedBy string `json:"createdBy" example:"01J9Z3Q6W8E3M4N5P6R7S8T9VA"`
}

type Pagination struct {
	Page       int `json:"page"       example:"1"`
	Limit      int `json:"limit"      example:"10"`
	Total      int `json:"total"      example:"25"`
	TotalPages int `json:"totalPages" example:"3"`
}

type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Pagination Pagination        `json:"pagination"`
}

// ============================================================================
// Tasks
// ============================================================================

type CreateTaskRequest struct {
	Name string `json:"name" example:"Write release notes"`
}

func (r CreateTaskRequest) Validate() []string {
	name := strings.TrimSpace(r.Name)
	switch {
	case name == "":
		return []string{MsgTaskNameRequired}
	case utf8.RuneCountInString(name) > MaxTaskNameLength:
		return []string{MsgTaskNameTooLong}
	}
	return nil
}

type TaskResponse struct {
	ID   string `json:"id"   example:"01J9Z3S2X3Y4Z5A6B7C8D9E0FG"`
	Name string `json:"name" example:"Write release notes"`
}

type TaskListResponse struct {
	Items []TaskResponse `json:"items"`
}

// ============================================================================
// Bootstrap
// ============================================================================

// BootstrapRequest describes the first administrator account.
type BootstrapRequest struct {
	Name     string `json:"name"     example:"Admin"`
	Email    string `json:"email"    example:"admin@example.com"`
	Password string `json:"password" example:"StrongPassword123!"`
}

func (r BootstrapRequest) Validate() []string {
	return RegisterRequest(r).Validate()
}

type BootstrapResponse struct {
	UserID string `json:"userId" example:"01J9Z3Q6W8E3M4N5P6R7S8T9VA"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is served by /livez and /readyz; only readyz fills Checks.
type HealthResponse struct {
	Status  string        `json:"status"            example:"ok"`
	Uptime  string        `json:"uptime,omitempty"  example:"1h23m45s"`
	Version string        `json:"version,omitempty" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database" example:"ok"`
}

// validEmail accepts a bare addr-spec only, so "Name <a@b.c>" is rejected.
func validEmail(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	_, domain, _ := strings.Cut(s, "@")
	return strings.Contains(domain, ".")
}
