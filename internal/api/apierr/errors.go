package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nucleobets/backend/internal/model"
	"github.com/nucleobets/backend/internal/services/analysis"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUserExists         = "USER_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotApproved        = "NOT_APPROVED"
	CodeAccountDeactivated = "ACCOUNT_DEACTIVATED"
	CodeAccountExpired     = "ACCOUNT_EXPIRED"
	CodeForbidden          = "FORBIDDEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeAnalysisNotFound   = "ANALYSIS_NOT_FOUND"
	CodeTipNotFound        = "TIP_NOT_FOUND"
	CodeSelfDelete         = "SELF_DELETE"
	CodeAdminDelete        = "ADMIN_DELETE"
	CodeWrongPassword      = "WRONG_PASSWORD"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Validation errors
	case errors.Is(err, model.ErrUserExists):
		return &httpError{http.StatusBadRequest, APIError{CodeUserExists, "Username or email already exists"}}
	case errors.Is(err, analysis.ErrInvalidBetType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Invalid bet type"}}
	case errors.Is(err, analysis.ErrInvalidOutcome):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Invalid outcome"}}
	case errors.Is(err, model.ErrWrongPassword):
		return &httpError{http.StatusBadRequest, APIError{CodeWrongPassword, "Current password is incorrect"}}

	// Unauthenticated
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, model.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired token"}}
	case errors.Is(err, model.ErrNotApproved):
		return &httpError{http.StatusUnauthorized, APIError{CodeNotApproved, "Account not approved by an administrator"}}
	case errors.Is(err, model.ErrAccountDeactivated):
		return &httpError{http.StatusUnauthorized, APIError{CodeAccountDeactivated, "Account has been deactivated"}}
	case errors.Is(err, model.ErrAccountExpired):
		return &httpError{http.StatusUnauthorized, APIError{CodeAccountExpired, "Account has expired"}}

	// Forbidden
	case errors.Is(err, model.ErrAdminOnly):
		return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Admin privileges required"}}

	// Not found
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrAnalysisNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAnalysisNotFound, "Analysis not found"}}
	case errors.Is(err, model.ErrTipNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTipNotFound, "Tip not found"}}

	// Invalid operations
	case errors.Is(err, model.ErrSelfDelete):
		return &httpError{http.StatusBadRequest, APIError{CodeSelfDelete, "Cannot delete your own account"}}
	case errors.Is(err, model.ErrAdminDelete):
		return &httpError{http.StatusBadRequest, APIError{CodeAdminDelete, "Cannot delete an admin account"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
