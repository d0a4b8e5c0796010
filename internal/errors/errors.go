// Package errors provides the application error type used across carteira.
// Services return *AppError values; handlers translate them into JSON
// responses with the localized message, never the internal cause.
package errors

import "net/http"

// AppError is a structured application error carrying a stable code, a
// user-facing message, the HTTP status to answer with and an optional cause.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that a
// wrapped copy still matches its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Autenticação necessária.", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Usuário ou senha inválidos.", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Sessão inválida ou expirada.", StatusCode: http.StatusUnauthorized}
)

// Registration errors.
var (
	ErrMissingField      = &AppError{Code: "MISSING_FIELD", Message: "Todos os campos são obrigatórios.", StatusCode: http.StatusBadRequest}
	ErrPasswordMismatch  = &AppError{Code: "PASSWORD_MISMATCH", Message: "As senhas não coincidem.", StatusCode: http.StatusBadRequest}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "Usuário já existe.", StatusCode: http.StatusConflict}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Dados inválidos.", StatusCode: http.StatusBadRequest}
	ErrInvalidAmount  = &AppError{Code: "INVALID_AMOUNT", Message: "Valor inválido.", StatusCode: http.StatusBadRequest}
	ErrInvalidDate    = &AppError{Code: "INVALID_DATE", Message: "Data inválida.", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Ocorreu um erro interno.", StatusCode: http.StatusInternalServerError}
)

// Resource errors.
var (
	ErrUserNotFound       = &AppError{Code: "USER_NOT_FOUND", Message: "Usuário não encontrado.", StatusCode: http.StatusNotFound}
	ErrEntryNotFound      = &AppError{Code: "ENTRY_NOT_FOUND", Message: "Lançamento não encontrado.", StatusCode: http.StatusNotFound}
	ErrBudgetNotFound     = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Orçamento não encontrado.", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound   = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Categoria não encontrada.", StatusCode: http.StatusNotFound}
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investimento não encontrado.", StatusCode: http.StatusNotFound}
)

// Category errors.
var (
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "Categoria já existe.", StatusCode: http.StatusConflict}
)
