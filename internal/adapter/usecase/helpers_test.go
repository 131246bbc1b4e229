package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"

	"mesa-board/internal/access"
	"mesa-board/internal/config/configs"
	"mesa-board/internal/core/domain"
	"mesa-board/internal/core/port/mocks"
	"mesa-board/internal/metrics"
)

var (
	admin  = domain.Principal{UserID: "u-admin", Email: "admin@example.com", Role: "admin"}
	viewer = domain.Principal{UserID: "u-viewer", Email: "viewer@example.com", Role: "viewer"}
)

func testGate() *access.Gate {
	return access.NewGate(configs.Access{FullAccessRoles: []string{"admin", "editor"}})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// openLimiter admits every call.
func openLimiter(t *testing.T) *mocks.MockLimiter {
	l := mocks.NewMockLimiter(t)
	l.EXPECT().Acquire(mock.Anything).Return(nil).Maybe()
	return l
}

func testReaderConfig() configs.Reader {
	return configs.Reader{PageSize: 500, MaxPageSize: 2000, MaxRetries: 2}
}

// tableRows builds n rows with ascending row ids.
func tableRows(n int, fill func(i int, row domain.Row)) []domain.Row {
	rows := make([]domain.Row, 0, n)
	for i := 0; i < n; i++ {
		row := domain.Row{domain.RowIDColumn: int64(i + 1)}
		if fill != nil {
			fill(i, row)
		}
		rows = append(rows, row)
	}
	return rows
}

// servePages answers FetchPage calls for table from rows, the way the
// postgres store slices an ordered table.
func servePages(store *mocks.MockTableStore, table domain.TableRef, rows []domain.Row) *mocks.MockTableStore_FetchPage_Call {
	return store.EXPECT().
		FetchPage(mock.Anything, table, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.TableRef, offset, limit int) (domain.Page, error) {
			if offset > len(rows) {
				offset = len(rows)
			}
			end := offset + limit
			if end > len(rows) {
				end = len(rows)
			}
			page := make([]domain.Row, end-offset)
			copy(page, rows[offset:end])
			return domain.Page{Rows: page, Total: int64(len(rows))}, nil
		})
}
