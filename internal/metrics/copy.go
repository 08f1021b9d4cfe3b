package metrics

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Copier is the bulk-load part of a pgx connection or pool.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// CopyWriter returns a Writer that loads each batch into table with COPY.
func CopyWriter[T any](db Copier, table string, columns []string, row func(T) []any) Writer[T] {
	return func(ctx context.Context, batch []T) error {
		if len(batch) == 0 {
			return nil
		}

		rows := make([][]any, len(batch))
		for i, item := range batch {
			rows[i] = row(item)
		}

		if _, err := db.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("failed to copy into %s: %w", table, err)
		}
		return nil
	}
}
