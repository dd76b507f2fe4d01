package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgBatchSize = 100

// Postgres persists rows through a pgx connection pool. All writes run in a
// single transaction begun on first use and finished by Commit.
type Postgres struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
	qb   squirrel.StatementBuilderType
}

func OpenPostgres(ctx context.Context, url string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Postgres{
		pool: pool,
		qb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

func (p *Postgres) begin(ctx context.Context) (pgx.Tx, error) {
	if p.tx != nil {
		return p.tx, nil
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	p.tx = tx
	return tx, nil
}

func (p *Postgres) InsertRows(ctx context.Context, table, pk string, rows []Row) ([]int64, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	tx, err := p.begin(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for start := 0; start < len(rows); start += pgBatchSize {
		end := start + pgBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		builder := p.qb.Insert(table).
			Columns(batch[0].Columns...).
			Suffix("RETURNING " + pk)
		for _, row := range batch {
			builder = builder.Values(row.Values...)
		}
		query, args, err := builder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build insert for %s: %w", table, err)
		}

		batchRows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		for batchRows.Next() {
			var id int64
			if err := batchRows.Scan(&id); err != nil {
				batchRows.Close()
				return nil, fmt.Errorf("failed to scan %s id: %w", table, err)
			}
			ids = append(ids, id)
		}
		if err := batchRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read %s ids: %w", table, err)
		}
		batchRows.Close()
	}
	return ids, nil
}

func (p *Postgres) FetchIDs(ctx context.Context, table string) ([]int64, error) {
	tx, err := p.begin(ctx)
	if err != nil {
		return nil, err
	}
	query, _, err := p.qb.Select("id").From(table).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query)
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

func (p *Postgres) FetchRefPairs(ctx context.Context, table, keyCol, valCol string) (map[int64]int64, error) {
	tx, err := p.begin(ctx)
	if err != nil {
		return nil, err
	}
	query, _, err := p.qb.Select(keyCol, valCol).From(table).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s.%s pairs: %w", table, valCol, err)
	}
	defer rows.Close()

	pairs := make(map[int64]int64)
	for rows.Next() {
		var key int64
		var val *int64
		if err := rows.Scan(&key, &val); err != nil {
			return nil, err
		}
		if val != nil {
			pairs[key] = *val
		}
	}
	return pairs, rows.Err()
}

func (p *Postgres) FetchNumericPairs(ctx context.Context, table, keyCol, valCol string) (map[int64]float64, error) {
	tx, err := p.begin(ctx)
	if err != nil {
		return nil, err
	}
	query, _, err := p.qb.Select(keyCol, valCol).From(table).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query)
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
func (p *Postgres) CountRows(ctx context.Context, table string) (int64, error) {
	tx, err := p.begin(ctx)
	if err != nil {
		return 0, err
	}
	query, _, err := p.qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", table, err)
	}
	return count, nil
}

func (p *Postgres) Commit(ctx context.Context) error {
	if p.tx == nil {
		return nil
	}
	if err := p.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	p.tx = nil
	return nil
}

func (p *Postgres) Close() error {
	if p.tx != nil {
		p.tx.Rollback(context.Background())
		p.tx = nil
	}
	p.pool.Close()
	return nil
}
