// Package handler contains the echo handlers of the query API.
package handler

import (
	"locator/internal/delivery/http/response"
	domainerrors "locator/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"locator/internal/errors"
)

const codeValidationError = "VALIDATION_ERROR"

// handleAppError renders AppErrors directly and leaves anything else to the HTTP error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.AppError(c, appErr)
	}

	return errors.WithStack(err)
}
