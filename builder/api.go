package builder

import (
	"errors"
	"strings"

	"github.com/nikola-chen/ormsql/clause"
	"github.com/nikola-chen/ormsql/dialect"
)

// API pre-binds a dialect so a caller building several statements for the
// same target does not repeat it.
type API struct {
	d   dialect.Dialect
	err error
}

// New creates an API bound to d.
//
// If d is nil, the returned API is still usable for chaining, but every
// statement produced from it fails to render.
func New(d dialect.Dialect) *API {
	if d == nil {
		return &API{err: ErrNilDialect}
	}
	return &API{d: d}
}

// Dialect creates an API by driver name (e.g. "mysql", "postgres").
func Dialect(driver string) *API {
	driver = strings.TrimSpace(driver)
	if driver == "" {
		return &API{err: errors.New("ormsql: empty dialect")}
	}
	d, ok := dialect.Get(driver)
	if !ok || d == nil {
		return &API{err: errors.New("ormsql: unsupported dialect: " + driver)}
	}
	return &API{d: d}
}

// MustDialect creates an API by driver name or panics if it is not registered.
func MustDialect(driver string) *API {
	a := Dialect(driver)
	if a.err != nil {
		panic(a.err)
	}
	return a
}

// Postgres returns an API bound to the PostgreSQL dialect.
func Postgres() *API { return New(dialect.Postgres()) }

// MySQL returns an API bound to the MySQL dialect.
func MySQL() *API { return New(dialect.MySQL()) }

// SQLite returns an API bound to the SQLite dialect.
func SQLite() *API { return New(dialect.SQLite()) }

// Err returns the error recorded while resolving the dialect.
func (a *API) Err() error { return a.err }

// D returns the bound dialect, nil when resolution failed.
func (a *API) D() dialect.Dialect { return a.d }

// Select creates a SelectStatement using the API's dialect.
func (a *API) Select(fields []string, table string) *SelectStatement {
	b := newSelect(a.d, fields, table)
	b.err = a.err
	return b
}

// Insert creates an InsertStatement using the API's dialect.
func (a *API) Insert(table string, fields []string) *InsertStatement {
	b := newInsert(a.d, table, fields)
	b.err = a.err
	return b
}

// Update creates an UpdateStatement using the API's dialect.
func (a *API) Update(table string, where *clause.Where) *UpdateStatement {
	b := newUpdate(a.d, table, where)
	b.err = a.err
	return b
}

// Delete creates a DeleteStatement using the API's dialect.
func (a *API) Delete(table string, where *clause.Where) *DeleteStatement {
	b := newDelete(a.d, table, where)
	b.err = a.err
	return b
}

// Placeholder returns the bound dialect's placeholder for argument n.
func (a *API) Placeholder(n int) string {
	if a.d == nil {
		return ""
	}
	return a.d.Placeholder(n)
}

// IDCondition renders "column = placeholder(n)" in the bound dialect.
func (a *API) IDCondition(column string, n int) string {
	if a.d == nil {
		return ""
	}
	return IDCondition(a.d, column, n)
}
