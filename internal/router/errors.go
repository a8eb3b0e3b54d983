package router

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "schoolportal/internal/errors"
	"schoolportal/internal/validation"
)

// newHTTPErrorHandler is the single point translating errors into the
// uniform JSON shapes. Validation failures carry per-field messages; every
// other error becomes {statusCode, message}.
func newHTTPErrorHandler(v *validation.Validator) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var status int
		var body interface{}

		switch e := err.(type) {
		case validator.ValidationErrors:
			status = http.StatusBadRequest
			body = apperrors.ValidationErrorResponse{
				StatusCode: status,
				Message:    "Validation failed",
				Errors:     v.Translate(e),
			}
		case *echo.HTTPError:
			status = e.Code
			body = apperrors.ErrorResponse{
				StatusCode: status,
				Message:    fmt.Sprintf("%v", e.Message),
			}
		default:
			code, message := apperrors.MapErrorToHTTP(err)
			status = code
			body = apperrors.ErrorResponse{StatusCode: status, Message: message}
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(status)
		} else {
			respErr = c.JSON(status, body)
		}
		if respErr != nil {
			c.Logger().Error(respErr)
		}
	}
}
