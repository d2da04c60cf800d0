package builder

import (
	"bytes"

	"github.com/nikola-chen/ormsql/clause"
	"github.com/nikola-chen/ormsql/dialect"
)

// InsertStatement builds single-row INSERT statements.
//
// Values are never embedded: the n-th field is bound to the n-th placeholder
// of the dialect.
type InsertStatement struct {
	base
	fields    []string
	returning *clause.Returning
}

func newInsert(d dialect.Dialect, table string, fields []string) *InsertStatement {
	return &InsertStatement{
		base:   newBase(d, table),
		fields: append(make([]string, 0, len(fields)), fields...),
	}
}

// SetReturning attaches a RETURNING clause.
func (b *InsertStatement) SetReturning(r *clause.Returning) *InsertStatement {
	if b.configuring() {
		b.returning = r
	}
	return b
}

// SQL renders "INSERT INTO table (f1,f2) VALUES (p1,p2)[ RETURNING ...]".
func (b *InsertStatement) SQL() (string, error) {
	if err := b.consume("insert"); err != nil {
		return "", err
	}
	fields, returning := b.fields, b.returning
	b.fields, b.returning = nil, nil
	if len(fields) == 0 {
		return "", ErrMissingFields
	}

	var buf bytes.Buffer
	buf.Grow(96)
	buf.WriteString("INSERT INTO ")
	buf.WriteString(b.table)
	buf.WriteString(" (")
	writeFields(&buf, fields)
	buf.WriteString(") VALUES (")
	for i := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(b.d.Placeholder(i + 1))
	}
	buf.WriteByte(')')
	if returning != nil {
		buf.WriteByte(' ')
		buf.WriteString(returning.SQL())
	}
	return buf.String(), nil
}

// MustSQL is like SQL but panics on error.
func (b *InsertStatement) MustSQL() string { return mustSQL(b) }
