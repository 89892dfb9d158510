package rest

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"unrot/utils/errors"
	"unrot/utils/logger"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// handleError maps err to its HTTP status and writes the error body.
func handleError(c echo.Context, err error, operation string) error {
	ctx := c.Request().Context()

	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		return err
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.UnknownError("internal server error", err, nil)
	}

	status := appErr.HTTPStatusCode()
	log := logger.FromContext(ctx)
	if status >= http.StatusInternalServerError {
		errors.LogError(log, appErr, operation)
	} else {
		log.WarnContext(ctx, "request rejected",
			"operation", operation,
			"error_code", string(appErr.Code),
			"error", appErr.Error(),
			"path", c.Request().URL.Path)
	}

	return c.JSON(status, ErrorResponse{Error: appErr.Message, Code: string(appErr.Code)})
}

func handleValidationError(c echo.Context, message string) error {
	return handleError(c, errors.InvalidInputError(message, nil, nil), "validate_input")
}
