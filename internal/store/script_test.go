package store

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptEmitsTransactionBlock(t *testing.T) {
	var buf bytes.Buffer
	s := NewScript(&buf)
	ctx := context.Background()

	ids, err := s.InsertRows(ctx, "companies", "id", []Row{
		{Columns: []string{"name", "employee_count"}, Values: []any{"Acme Inc", 42}},
		{Columns: []string{"name", "employee_count"}, Values: []any{"Vertex LLC", 7}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)

	// Nothing reaches the writer until Commit.
	assert.Zero(t, buf.Len())

	require.NoError(t, s.Commit(ctx))
	out := buf.String()

	assert.True(t, strings.HasSuffix(out, "COMMIT;\n"))
	assert.Contains(t, out, "BEGIN;")
	assert.Contains(t, out, "-- companies")
	assert.Contains(t, out, "INSERT INTO companies (id, name, employee_count) VALUES (1, 'Acme Inc', 42);")
	assert.Contains(t, out, "INSERT INTO companies (id, name, employee_count) VALUES (2, 'Vertex LLC', 7);")
	assert.Contains(t, out, "SELECT setval('companies_id_seq', 2);")
	assert.Less(t, strings.Index(out, "BEGIN;"), strings.Index(out, "INSERT INTO"))
}

func TestScriptLiteralFormatting(t *testing.T) {
	var buf bytes.Buffer
	s := NewScript(&buf)
	ctx := context.Background()

	ts := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)
	_, err := s.InsertRows(ctx, "notes", "id", []Row{
		{
			Columns: []string{"content", "pinned", "score", "created_at", "deleted_at"},
			Values:  []any{"it's done", true, 12.5, ts, nil},
		},
	})
	require.NoError(t, err)
	require.NoError(t, s.Commit(ctx))
	out := buf.String()

	assert.Contains(t, out, "'it''s done'")
	assert.Contains(t, out, "TRUE")
	assert.Contains(t, out, "12.50")
	assert.Contains(t, out, "'2024-05-17 09:30:00'")
	assert.Contains(t, out, "NULL")
}

func TestScriptAssignsSequentialIDsPerTable(t *testing.T) {
	var buf bytes.Buffer
	s := NewScript(&buf)
	ctx := context.Background()

	row := Row{Columns: []string{"name"}, Values: []any{"x"}}
	first, err := s.InsertRows(ctx, "companies", "id", []Row{row, row})
	require.NoError(t, err)
	second, err := s.InsertRows(ctx, "products", "id", []Row{row})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, first)
	assert.Equal(t, []int64{1}, second)
}

func TestScriptCannotFetch(t *testing.T) {
	s := NewScript(&bytes.Buffer{})
	ctx := context.Background()

	_, err := s.FetchIDs(ctx, "companies")
	assert.Error(t, err)
	_, err = s.FetchRefPairs(ctx, "contacts", "id", "company_id")
	assert.Error(t, err)
	_, err = s.FetchNumericPairs(ctx, "products", "id", "price")
	assert.Error(t, err)
}
