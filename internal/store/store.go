package store

import "context"

// Row is one generated record: column names paired positionally with values.
// Column order is preserved so that emitted SQL is stable across runs.
type Row struct {
	Columns []string
	Values  []any
}

// Store is the narrow persistence contract the seeder depends on. The live
// implementations keep every write inside a single transaction that Commit
// finishes; nothing is visible to other sessions before that.
type Store interface {
	// InsertRows persists the rows into table and returns the primary-key
	// values assigned to them, in insertion order.
	InsertRows(ctx context.Context, table, pk string, rows []Row) ([]int64, error)

	// FetchIDs returns every primary-key value already persisted in table.
	FetchIDs(ctx context.Context, table string) ([]int64, error)

	// FetchRefPairs returns keyCol -> valCol for every row in table, used to
	// rebuild the contact -> company mapping from existing data.
	FetchRefPairs(ctx context.Context, table, keyCol, valCol string) (map[int64]int64, error)

	// FetchNumericPairs returns keyCol -> valCol for every row in table, used
	// to rebuild the product -> price mapping from existing data.
	FetchNumericPairs(ctx context.Context, table, keyCol, valCol string) (map[int64]float64, error)

	// Commit makes the whole run's writes permanent.
	Commit(ctx context.Context) error

	Close() error
}
