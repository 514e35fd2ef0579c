package errors

import (
	"fmt"
	"net/http"

	"padelpoint/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message, rendered verbatim
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches two BaseErrors by code and message so predefined values survive WithDetails.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode && e.message == other.message
}

func NewBadRequest(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf(format, args...), "")
}

func NewNotFound(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusNotFound, "NOT_FOUND", fmt.Sprintf(format, args...), "")
}

func NewUnauthorized(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", fmt.Sprintf(format, args...), "")
}

func NewForbidden(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusForbidden, "FORBIDDEN", fmt.Sprintf(format, args...), "")
}

func NewConflict(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusConflict, "CONFLICT", fmt.Sprintf(format, args...), "")
}

// Predefined error types
var (
	// Guard errors
	ErrNoTokens = NewBaseError(
		http.StatusUnauthorized,
		"TOKENS_MISSING",
		"any token in header request",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"The session expired.",
		"",
	)

	ErrInvalidRefreshPayload = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_PAYLOAD_INVALID",
		"Invalid refresh token payload.",
		"",
	)

	ErrAccessTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"ACCESS_TOKEN_EXPIRED",
		"The access token is expired. Please refresh the token again",
		"",
	)

	ErrInvalidAccessPayload = NewBaseError(
		http.StatusUnauthorized,
		"ACCESS_PAYLOAD_INVALID",
		"Invalid access token payload.",
		"",
	)

	ErrNoRolesInToken = NewBaseError(
		http.StatusUnauthorized,
		"ROLES_MISSING",
		"No roles in the token",
		"",
	)

	ErrForbiddenResource = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Forbidden resource",
		"",
	)

	// Password reset guard errors
	ErrResetTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"RESET_TOKEN_MISSING",
		"No jwt in request",
		"",
	)

	ErrResetTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"RESET_TOKEN_EXPIRED",
		"The jwt is expired",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"RESET_TOKEN_INVALID",
		"The jwt is invalid",
		"",
	)

	// Session errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"The credentials not match",
		"",
	)

	ErrGoogleLoginRequired = NewBaseError(
		http.StatusUnauthorized,
		"GOOGLE_LOGIN_REQUIRED",
		"This user can not inicialize by local login. Google OAuth login needed",
		"",
	)

	ErrRefreshTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_MISSING",
		"any refresh token, please login again",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"The refresh token was expired, please login again",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"The google token could not be verified",
		"",
	)

	ErrUserInactive = NewBaseError(
		http.StatusUnauthorized,
		"USER_INACTIVE",
		"The user is not active",
		"",
	)

	ErrCallerMismatch = NewBaseError(
		http.StatusUnauthorized,
		"CALLER_MISMATCH",
		"User ID does not match the one in the cookie.",
		"",
	)

	// Password reset errors
	ErrResetCodeIncorrect = NewBaseError(
		http.StatusBadRequest,
		"RESET_CODE_INCORRECT",
		"The code is incorrect",
		"",
	)

	ErrResetCodeExpired = NewBaseError(
		http.StatusBadRequest,
		"RESET_CODE_EXPIRED",
		"The code is expired",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"The password with no-empty spaces must be equal or more than 8 characters",
		"",
	)

	// Catalog errors
	ErrCostNotBelowPrice = NewBaseError(
		http.StatusBadRequest,
		"COST_NOT_BELOW_PRICE",
		"The cost value can not be equal or higher than the price value",
		"",
	)

	ErrUnsupportedImage = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_IMAGE",
		"The file is not a supported image",
		"",
	)

	// Payment errors
	ErrPaymentLookupFailed = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_LOOKUP_FAILED",
		"Error fetching the payment status by payment id",
		"",
	)

	ErrPreferenceFailed = NewBaseError(
		http.StatusBadRequest,
		"PREFERENCE_FAILED",
		"Error in the creation of the embeded form",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The request body is not valid",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusBadRequest,
		"TRANSACTION_FAILED",
		"Error in the creation of a new order",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// Formatted messages shared by several services
func UserNotFound(id int64) *BaseError {
	return NewNotFound("The user with id '%d' was not found", id)
}

func ProductNotFound(id int64) *BaseError {
	return NewNotFound("The product with id '%d' was not found", id)
}

func ProductInactive(id int64) *BaseError {
	return NewBadRequest("The product with id '%d' is not active (deleted)", id)
}

func ProductLowStock(id int64) *BaseError {
	return NewBadRequest("The product with id '%d' not have many stock", id)
}

func AddressNotOwned(id int64) *BaseError {
	return NewNotFound("The address with id '%d' was not register with the user or not exists", id)
}

func DuplicatePayment(id int64) *BaseError {
	return NewBadRequest("The payment id '%d' already exists", id)
}

func TokenIDMismatch(id int64) *BaseError {
	return NewUnauthorized("User ID '%d' does not match the token ID", id)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
