// Package sql adapts database/sql result sets into lazy iterators, so
// query results feed the seq combinators one row per pull.
package sql

import (
	"database/sql"

	"github.com/lguimbarda/min-seq/seq/core"
)

// Scanner is a function that scans the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// RowSource is a single-pass iterator over a query's result set. The
// control is the zero-based row index. Iteration stops at the end of
// the result set, or at the first row or scan error; after exhaustion,
// Err reports what stopped it (nil for normal completion).
//
// The underlying rows are closed automatically when iteration stops.
// Callers that abandon a RowSource before exhausting it must call
// Close themselves.
type RowSource[T any] struct {
	rows *sql.Rows
	scan Scanner[T]
	row  int
	done bool
	err  error
}

// Query executes the query and returns a RowSource over its rows. The
// scanner is called once per pull to convert the current row.
func Query[T any](db *sql.DB, query string, scan Scanner[T], args ...any) (*RowSource[T], error) {
	if scan == nil {
		panic("Query: scanner cannot be nil")
	}
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return &RowSource[T]{rows: rows, scan: scan}, nil
}

// Next advances to the next row and returns it, or Done once the
// result set is exhausted or an error occurred.
func (s *RowSource[T]) Next() core.Result[int, T] {
	if s.done {
		return core.Done[int, T]()
	}
	if !s.rows.Next() {
		s.stop(s.rows.Err())
		return core.Done[int, T]()
	}
	value, err := s.scan(s.rows)
	if err != nil {
		s.stop(err)
		return core.Done[int, T]()
	}
	s.row++
	return core.Item(s.row-1, value)
}

// Iter returns the RowSource as a lazy iterator function, ready to
// feed combinators via AsStep.
func (s *RowSource[T]) Iter() core.Next[int, T] {
	return s.Next
}

// Err returns the error that terminated iteration, if any. Valid after
// Next has reported Done.
func (s *RowSource[T]) Err() error {
	return s.err
}

// Close releases the underlying rows. Safe to call more than once and
// after normal exhaustion.
func (s *RowSource[T]) Close() error {
	if s.done {
		return nil
	}
	s.stop(nil)
	return s.err
}

func (s *RowSource[T]) stop(err error) {
	s.done = true
	if cerr := s.rows.Close(); err == nil {
		err = cerr
	}
	s.err = err
}
