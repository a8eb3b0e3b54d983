package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// strictJSONBinder decodes JSON request bodies and rejects unknown fields,
// mirroring a whitelist-only input policy. An empty body binds to the
// zero value; validation decides whether that is acceptable.
type strictJSONBinder struct{}

func (strictJSONBinder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.Body == nil || req.ContentLength == 0 {
		return nil
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
