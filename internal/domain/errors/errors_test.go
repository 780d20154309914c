package errors

import (
	"net/http"
	"testing"

	"locator/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrSchemaMismatch.WithDetails("missing columns: frete")

	assert.True(t, errors.Is(err, ErrSchemaMismatch))
	assert.False(t, errors.Is(err, ErrStoreUnavailable))
	assert.Equal(t, "Estrutura da base de transportadoras inválida: missing columns: frete", err.Error())
	assert.Equal(t, "missing columns: frete", err.Details())
	assert.Empty(t, ErrSchemaMismatch.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := errors.Wrap(NewDatabaseExecuteError(cause, "failed to list carriers"), "nearest carriers")

	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.True(t, errors.Is(err, cause))

	appErr, ok := errors.AsType[AppError](err)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
		assert.Equal(t, "failed to list carriers", appErr.Details())
	}
	assert.Contains(t, err.Error(), "database execution failed: connection reset by peer")
}

func TestPredefinedStatusCodes(t *testing.T) {
	tests := []struct {
		err  *BaseError
		want int
	}{
		{err: ErrInvalidState, want: http.StatusBadRequest},
		{err: ErrLocationNotFound, want: http.StatusNotFound},
		{err: ErrGeocodeFailed, want: http.StatusBadGateway},
		{err: ErrStoreUnavailable, want: http.StatusServiceUnavailable},
		{err: ErrSyncInProgress, want: http.StatusConflict},
		{err: ErrSyncDisabled, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPCode())
		})
	}
}
