package builder

import (
	"github.com/nikola-chen/ormsql/clause"
	"github.com/nikola-chen/ormsql/dialect"
)

// NewSelect creates a SelectStatement over fields of table.
func NewSelect(d dialect.Dialect, fields []string, table string) *SelectStatement {
	return newSelect(d, fields, table)
}

// NewInsert creates an InsertStatement of fields into table.
func NewInsert(d dialect.Dialect, table string, fields []string) *InsertStatement {
	return newInsert(d, table, fields)
}

// NewUpdate creates an UpdateStatement on table restricted by where.
func NewUpdate(d dialect.Dialect, table string, where *clause.Where) *UpdateStatement {
	return newUpdate(d, table, where)
}

// NewDelete creates a DeleteStatement on table restricted by where.
func NewDelete(d dialect.Dialect, table string, where *clause.Where) *DeleteStatement {
	return newDelete(d, table, where)
}
