package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// SQLDB persists rows through database/sql for providers without a native
// adapter (mysql, sqlite). These drivers have no multi-row RETURNING, so
// rows are inserted one at a time and ids come from LastInsertId.
type SQLDB struct {
	db *sql.DB
	tx *sql.Tx
	qb squirrel.StatementBuilderType
}

// OpenSQLDB connects using the driver matching the provider name.
func OpenSQLDB(ctx context.Context, provider, url string) (*SQLDB, error) {
	var driverName string
	switch provider {
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &SQLDB{
		db: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

func (s *SQLDB) begin(ctx context.Context) (*sql.Tx, error) {
	if s.tx != nil {
		return s.tx, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	s.tx = tx
	return tx, nil
}

func (s *SQLDB) InsertRows(ctx context.Context, table, pk string, rows []Row) ([]int64, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		query, args, err := s.qb.Insert(table).
			Columns(row.Columns...).
			Values(row.Values...).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build insert for %s: %w", table, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s insert id: %w", table, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *SQLDB) FetchIDs(ctx context.Context, table string) ([]int64, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	query, _, err := s.qb.Select("id").From(table).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s ids: %w", table, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SQLDB) FetchRefPairs(ctx context.Context, table, keyCol, valCol string) (map[int64]int64, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	query, _, err := s.qb.Select(keyCol, valCol).From(table).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s.%s pairs: %w", table, valCol, err)
	}
	defer rows.Close()

	pairs := make(map[int64]int64)
	for rows.Next() {
		var key int64
		var val sql.NullInt64
		if err := rows.Scan(&key, &val); err != nil {
			return nil, err
		}
		if val.Valid {
			pairs[key] = val.Int64
		}
	}
	return pairs, rows.Err()
}

func (s *SQLDB) FetchNumericPairs(ctx context.Context, table, keyCol, valCol string) (map[int64]float64, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	query, _, err := s.qb.Select(keyCol, valCol).From(table).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s.%s pairs: %w", table, valCol, err)
	}
	defer rows.Close()

	pairs := make(map[int64]float64)
	for rows.Next() {
		var key int64
		var val float64
		if err := rows.Scan(&key, &val); err != nil {
			return nil, err
		}
		pairs[key] = val
	}
	return pairs, rows.Err()
}

// CountRows reports the number of persisted rows, for the post-run report.
func (s *SQLDB) CountRows(ctx context.Context, table string) (int64, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	query, _, err := s.qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", table, err)
	}
	return count, nil
}

func (s *SQLDB) Commit(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.tx = nil
	return nil
}

func (s *SQLDB) Close() error {
	if s.tx != nil {
		s.tx.Rollback()
		s.tx = nil
	}
	return s.db.Close()
}
