package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/plan"
	"stowage/internal/core/domain/model/storage"
	"stowage/internal/core/domain/services"
	"stowage/internal/generated/servers"
	"stowage/internal/pkg/errs"
)

// errBadRequest marks malformed requests detected by the adapter itself.
var errBadRequest = errors.New("bad request")

// statusFor maps use case errors to HTTP status codes. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrInvalidGeometry):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrContainerNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrCapacityExceeded),
		errors.Is(err, services.ErrItemNotPlaced),
		errors.Is(err, cargo.ErrItemIsWaste),
		errors.Is(err, plan.ErrReturnManifestIsCompleted),
		errors.Is(err, commands.ErrItemAlreadyPlaced):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON error body. Server errors are logged and their
// details withheld from the client.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		message = http.StatusText(status)
	}
	return c.JSON(status, servers.Error{Success: false, Code: status, Message: message})
}
