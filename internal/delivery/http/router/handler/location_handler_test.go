package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	mockUsecase "locator/internal/mocks/usecase"
	"locator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationHandler_Resolve(t *testing.T) {
	uc := mockUsecase.NewMockLocationUsecase(t)
	h := NewLocationHandler(LocationHandlerParams{LocationUC: uc, Logger: newTestLogger()})

	uc.EXPECT().
		Resolve(mock.Anything, "Ribeirao Preto", "sp").
		Return(&usecase.Resolution{
			City:        "Ribeirao Preto",
			State:       "SP",
			Coordinate:  entity.NewCoordinate(-21.1775, -47.8103),
			Source:      usecase.SourceIndex,
			MatchedName: "Ribeirão Preto",
		}, nil).
		Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/resolve?city=Ribeirao+Preto&state=sp", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Resolve(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source":"index"`)
	assert.Contains(t, rec.Body.String(), "Ribeirão Preto")
}

func TestLocationHandler_Resolve_MissingParams(t *testing.T) {
	uc := mockUsecase.NewMockLocationUsecase(t)
	h := NewLocationHandler(LocationHandlerParams{LocationUC: uc, Logger: newTestLogger()})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/resolve?city=Campinas", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Resolve(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, codeValidationError, body.Error.Code)
}

func TestLocationHandler_Resolve_InvalidState(t *testing.T) {
	uc := mockUsecase.NewMockLocationUsecase(t)
	h := NewLocationHandler(LocationHandlerParams{LocationUC: uc, Logger: newTestLogger()})

	uc.EXPECT().
		Resolve(mock.Anything, "Campinas", "XX").
		Return(nil, domainerrors.ErrInvalidState.WithDetails("XX")).
		Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/resolve?city=Campinas&state=XX", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Resolve(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_STATE", body.Error.Code)
}
