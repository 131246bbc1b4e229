package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"mesa-board/internal/core/domain"
)

// SQLSTATE codes the adapters react to.
const (
	codeUndefinedTable       = "42P01"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeAdminShutdown        = "57P01"
	codeCrashShutdown        = "57P02"
	codeCannotConnectNow     = "57P03"
)

// classify maps driver errors onto the domain taxonomy. Missing relations
// become ErrNotFound; connection loss, timeouts and server restarts become
// ErrTransient. Context errors pass through untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeUndefinedTable:
			return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		case transientCode(pgErr.Code):
			return fmt.Errorf("%w: %w", domain.ErrTransient, err)
		}
		return err
	}

	var (
		connErr *pgconn.ConnectError
		netErr  net.Error
	)
	switch {
	case errors.As(err, &connErr),
		errors.As(err, &netErr),
		pgconn.Timeout(err),
		pgconn.SafeToRetry(err),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w", domain.ErrTransient, err)
	}
	return err
}

func transientCode(code string) bool {
	switch code {
	case codeSerializationFailure, codeDeadlockDetected, codeAdminShutdown, codeCrashShutdown, codeCannotConnectNow:
		return true
	}
	// class 08: connection exception, class 53: insufficient resources
	return len(code) == 5 && (code[:2] == "08" || code[:2] == "53")
}
