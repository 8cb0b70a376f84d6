// Package pgerrs translates driver-level failures into the service error taxonomy.
package pgerrs

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"strings"

	"prepcenter/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// Wrap returns err unchanged unless it means the store could not be reached, in which case
// it becomes a StoreUnavailableError for operation.
func Wrap(operation string, err error) error {
	if err == nil {
		return nil
	}
	if IsUnavailable(err) {
		return errs.NewStoreUnavailableErrorWithCause(operation, err)
	}
	return err
}

// IsUnavailable reports connection loss, timeouts and server shutdowns.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errs.ErrStoreUnavailable) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded) ||
		pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 08 is connection exception, 57P0x is operator intervention (shutdown)
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P0")
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
