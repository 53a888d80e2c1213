package record

import (
	"fmt"
	"strings"
	"time"
)

// PageQuery describes one page of a wallet-scoped listing, optionally
// narrowed to an inclusive window on the created timestamp. It is a
// request-shaped value and is never persisted.
type PageQuery struct {
	Page  int64
	Count int64
	Begin *time.Time
	End   *time.Time
}

// Valid reports whether the page coordinates are usable. Invalid queries
// must be rejected before any store access.
func (q PageQuery) Valid() bool {
	return q.Page >= 1 && q.Count >= 1
}

// Offset returns the row offset of the requested page, computed in the
// signed 64-bit domain.
func (q PageQuery) Offset() int64 {
	return (q.Page - 1) * q.Count
}

// Limit returns the page size.
func (q PageQuery) Limit() int64 {
	return q.Count
}

// timePredicates enumerates the supported created-time filters for this
// query: none, a lower bound, an upper bound, or both. Each bound compiles
// to its own fragment with its own placeholder; begin and end are never
// bound to the same parameter slot.
func (q PageQuery) timePredicates() []timePredicate {
	var preds []timePredicate
	if q.Begin != nil {
		preds = append(preds, timePredicate{op: ">=", bound: q.Begin.UTC()})
	}
	if q.End != nil {
		preds = append(preds, timePredicate{op: "<=", bound: q.End.UTC()})
	}
	return preds
}

type timePredicate struct {
	op    string
	bound time.Time
}

// Compile appends the query's time-range predicates, a deterministic
// ORDER BY on created, and LIMIT/OFFSET clauses to base. base must already
// contain a WHERE clause; args are the values bound to its placeholders.
// The returned statement and argument slice are ready for execution.
func (q PageQuery) Compile(base string, args []any) (string, []any) {
	var b strings.Builder
	b.WriteString(base)
	for _, p := range q.timePredicates() {
		args = append(args, p.bound)
		fmt.Fprintf(&b, " AND created %s $%d", p.op, len(args))
	}
	b.WriteString(" ORDER BY created")
	args = append(args, q.Limit())
	fmt.Fprintf(&b, " LIMIT $%d", len(args))
	args = append(args, q.Offset())
	fmt.Fprintf(&b, " OFFSET $%d", len(args))
	return b.String(), args
}

// InWindow reports whether created falls inside the query's inclusive time
// window. Used by the in-memory repositories to mirror Compile's predicate.
func (q PageQuery) InWindow(created time.Time) bool {
	if q.Begin != nil && created.Before(q.Begin.UTC()) {
		return false
	}
	if q.End != nil && created.After(q.End.UTC()) {
		return false
	}
	return true
}
