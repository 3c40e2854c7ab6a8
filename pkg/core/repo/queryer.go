package repo

import "context"

// Queryer runs raw SQL statements. Repositories prefer their typed
// queryer methods, while Queryer is useful for schema management and
// the test suites which need to prepare database rows directly.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (count int64, err error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Rows is a result set which must be closed after its consumption.
type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
	Values() ([]any, error)
}
