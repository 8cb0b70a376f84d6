package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"prepcenter/internal/adapters/out/postgres/pgerrs"
	"prepcenter/internal/core/application/usecases/commands"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/generated/servers"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// conflicts are the refusals a caller can resolve by re-reading state. Order matters: the
// first match names the reason label.
var conflicts = []struct {
	reason string
	err    error
}{
	{"already_claimed", task.ErrAlreadyClaimed},
	{"not_holder", task.ErrNotHolder},
	{"station_at_capacity", station.ErrStationAtCapacity},
	{"station_inactive", station.ErrStationInactive},
	{"concurrent_update", commands.ErrConcurrentUpdate},
	{"invalid_state", errs.ErrInvalidState},
}

// statusOf maps an application error to its HTTP status and, for conflicts, the reason.
// Read paths hand back driver errors as they are, so store outages are also recognised
// by their driver shape.
func statusOf(err error) (int, string) {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return http.StatusNotFound, ""
	}
	for _, c := range conflicts {
		if errors.Is(err, c.err) {
			return http.StatusConflict, c.reason
		}
	}

	switch {
	case errors.Is(err, errs.ErrStoreUnavailable), pgerrs.IsUnavailable(err):
		return http.StatusServiceUnavailable, ""
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, ""
	}
	return http.StatusInternalServerError, ""
}

// respondError writes the error body for err raised by operation and records conflicts.
func (s *Server) respondError(c echo.Context, operation string, err error) error {
	status, reason := statusOf(err)
	if reason != "" {
		s.metrics.RecordConflict(operation, reason)
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"operation", operation, "path", c.Path(), "error", err)
		message = http.StatusText(status)
	}

	return c.JSON(status, servers.Error{Code: status, Message: message})
}

// ErrorHandler renders echo's own errors (routing, binding, auth) in the API error shape.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled error", "path", c.Path(), "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, servers.Error{Code: status, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

// Metrics records one observation per request, labelled by route pattern.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}
			m.RecordHTTPRequest(c.Request().Method, c.Path(), status, time.Since(start))
			return err
		}
	}
}
