package errors

import (
	"net/http"

	"locator/internal/errors"
)

// AppError is an error the HTTP layer can render as is: a status, a stable
// code clients branch on, a Portuguese message for end users and optional
// technical details.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is the value type behind the predefined errors below.
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

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so errors built
// with WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails copies e with details attached. The copy still matches e under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

var (
	// Resolution errors
	ErrInvalidState = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATE",
		"UF inválida",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Coordenadas não encontradas para esta cidade/UF",
		"",
	)

	ErrGeocodeFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODE_FAILED",
		"Falha ao consultar o serviço de geocodificação",
		"",
	)

	// Store errors
	ErrSchemaMismatch = NewBaseError(
		http.StatusInternalServerError,
		"SCHEMA_MISMATCH",
		"Estrutura da base de transportadoras inválida",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"Erro ao conectar ao banco de dados",
		"",
	)

	// Synchronization errors
	ErrSyncInProgress = NewBaseError(
		http.StatusConflict,
		"SYNC_IN_PROGRESS",
		"Já existe uma sincronização em andamento",
		"",
	)

	ErrSyncDisabled = NewBaseError(
		http.StatusForbidden,
		"SYNC_DISABLED",
		"Sincronização via API desabilitada",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)
)

// DatabaseExecuteError reports a failed statement against the carrier store.
// It unwraps to ErrStoreUnavailable so the queue worker retries it and the
// HTTP layer answers 503.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes both the store kind and the driver error.
func (e *DatabaseExecuteError) Unwrap() []error {
	return []error{ErrStoreUnavailable, e.err}
}

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusServiceUnavailable }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Falha ao executar operação no banco de dados" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
