package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/team-ops/errors"
)

// handleError centralizes error mapping and logging. AppErrors carry their
// own HTTP status; anything else is a storage or programming failure and
// surfaces as a 500 with the underlying message.
func handleError(logger *zap.Logger, c echo.Context, err error) error {
	var appErr apperrors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("path", c.Path()),
				zap.String("code", appErr.Code.String()),
				zap.Error(err),
			)
		}
		return c.JSON(appErr.HTTPCode, echo.Map{"error": appErr.Message})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

// handleDeleted writes the idempotent delete acknowledgement
func handleDeleted(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Deleted"})
}

// bindAndValidate binds the request into v and runs struct validation,
// mapping both failure modes to a 400 AppError
func bindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return apperrors.ErrInvalidPayload()
	}
	if err := c.Validate(v); err != nil {
		return apperrors.ErrValidation(err.Error())
	}
	return nil
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrValidation("id must be a valid UUID")
	}
	return id, nil
}
