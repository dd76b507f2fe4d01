package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Script is the text-emission store: instead of executing inserts it writes
// literal INSERT statements wrapped in a transaction block, assigning
// sequential primary keys itself and resetting each table's sequence at the
// end. Output is buffered and only flushed by Commit, so a failed run emits
// nothing.
type Script struct {
	w      io.Writer
	buf    bytes.Buffer
	nextID map[string]int64
}

func NewScript(w io.Writer) *Script {
	s := &Script{w: w, nextID: make(map[string]int64)}
	s.buf.WriteString("-- CRM sample data\n")
	s.buf.WriteString("-- Generated by crmseed script\n\n")
	s.buf.WriteString("BEGIN;\n")
	return s
}

func (s *Script) InsertRows(ctx context.Context, table, pk string, rows []Row) ([]int64, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	fmt.Fprintf(&s.buf, "\n-- %s\n", table)
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		id := s.nextID[table] + 1
		s.nextID[table] = id
		ids = append(ids, id)

		columns := make([]string, 0, len(row.Columns)+1)
		values := make([]string, 0, len(row.Values)+1)
		columns = append(columns, pk)
		values = append(values, strconv.FormatInt(id, 10))
		for i, col := range row.Columns {
			columns = append(columns, col)
			values = append(values, sqlLiteral(row.Values[i]))
		}
		fmt.Fprintf(&s.buf, "INSERT INTO %s (%s) VALUES (%s);\n",
			table, strings.Join(columns, ", "), strings.Join(values, ", "))
	}
	fmt.Fprintf(&s.buf, "SELECT setval('%s_%s_seq', %d);\n", table, pk, s.nextID[table])
	return ids, nil
}

func (s *Script) FetchIDs(ctx context.Context, table string) ([]int64, error) {
	return nil, fmt.Errorf("cannot read existing %s rows in script mode", table)
}

func (s *Script) FetchRefPairs(ctx context.Context, table, keyCol, valCol string) (map[int64]int64, error) {
	return nil, fmt.Errorf("cannot read existing %s rows in script mode", table)
}

func (s *Script) FetchNumericPairs(ctx context.Context, table, keyCol, valCol string) (map[int64]float64, error) {
	return nil, fmt.Errorf("cannot read existing %s rows in script mode", table)
}

func (s *Script) Commit(ctx context.Context) error {
	s.buf.WriteString("\nCOMMIT;\n")
	if _, err := s.w.Write(s.buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	s.buf.Reset()
	return nil
}

func (s *Script) Close() error {
	return nil
}

// sqlLiteral renders a value as a SQL literal, escaping single quotes in
// strings.
func sqlLiteral(val any) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case time.Time:
		return "'" + v.Format("2006-01-02 15:04:05") + "'"
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	default:
		return "'" + strings.ReplaceAll(fmt.Sprintf("%v", v), "'", "''") + "'"
	}
}
