// Package backend выбирает реализацию хранилища по имени драйвера из конфигурации
package backend

import (
	"context"
	"fmt"

	"github.com/iudanet/expensekeeper/internal/server/storage"
	"github.com/iudanet/expensekeeper/internal/server/storage/postgres"
	"github.com/iudanet/expensekeeper/internal/server/storage/sqlite"
)

// Supported driver names
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open opens the storage for driver and applies migrations
func Open(ctx context.Context, driver, dsn string) (storage.Storage, error) {
	// Явные ветки вместо return New(...), чтобы не вернуть typed nil внутри интерфейса
	switch driver {
	case DriverSQLite:
		s, err := sqlite.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverPostgres:
		s, err := postgres.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
}
