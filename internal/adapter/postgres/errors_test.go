package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-board/internal/core/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		notFound  bool
		transient bool
	}{
		{name: "undefined table", err: &pgconn.PgError{Code: "42P01"}, notFound: true},
		{name: "connection failure", err: &pgconn.PgError{Code: "08006"}, transient: true},
		{name: "too many connections", err: &pgconn.PgError{Code: "53300"}, transient: true},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01"}, transient: true},
		{name: "serialization", err: &pgconn.PgError{Code: "40001"}, transient: true},
		{name: "syntax error", err: &pgconn.PgError{Code: "42601"}},
		{name: "unexpected eof", err: fmt.Errorf("read: %w", io.ErrUnexpectedEOF), transient: true},
		{name: "plain", err: errors.New("boom")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			require.ErrorIs(t, got, tt.err)
			assert.Equal(t, tt.notFound, errors.Is(got, domain.ErrNotFound))
			assert.Equal(t, tt.transient, errors.Is(got, domain.ErrTransient))
		})
	}
}

func TestClassifyPassesContextErrors(t *testing.T) {
	assert.Equal(t, context.Canceled, classify(context.Canceled))
	wrapped := fmt.Errorf("query: %w", context.DeadlineExceeded)
	assert.Equal(t, wrapped, classify(wrapped))
	assert.NoError(t, classify(nil))
}
