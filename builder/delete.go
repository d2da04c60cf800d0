package builder

import (
	"bytes"

	"github.com/nikola-chen/ormsql/clause"
	"github.com/nikola-chen/ormsql/dialect"
)

// DeleteStatement builds DELETE statements. Like UpdateStatement it requires
// a predicate.
type DeleteStatement struct {
	base
	where     *clause.Where
	returning *clause.Returning
}

func newDelete(d dialect.Dialect, table string, where *clause.Where) *DeleteStatement {
	return &DeleteStatement{base: newBase(d, table), where: where.Clone()}
}

// SetWhere replaces the predicate with a copy of where.
func (b *DeleteStatement) SetWhere(where *clause.Where) *DeleteStatement {
	if b.configuring() {
		b.where = where.Clone()
	}
	return b
}

// SetReturning attaches a RETURNING clause.
func (b *DeleteStatement) SetReturning(r *clause.Returning) *DeleteStatement {
	if b.configuring() {
		b.returning = r
	}
	return b
}

// SQL renders "DELETE FROM table WHERE ...[ RETURNING ...]".
func (b *DeleteStatement) SQL() (string, error) {
	if err := b.consume("delete"); err != nil {
		return "", err
	}
	where, returning := b.where, b.returning
	b.where, b.returning = nil, nil
	if where.Empty() {
		return "", ErrMissingWhere
	}

	var buf bytes.Buffer
	buf.Grow(96)
	buf.WriteString("DELETE FROM ")
	buf.WriteString(b.table)
	buf.WriteByte(' ')
	buf.WriteString(where.SQL())
	if returning != nil {
		buf.WriteByte(' ')
		buf.WriteString(returning.SQL())
	}
	return buf.String(), nil
}

// MustSQL is like SQL but panics on error.
func (b *DeleteStatement) MustSQL() string { return mustSQL(b) }
