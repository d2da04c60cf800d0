package builder

import (
	"bytes"

	"github.com/nikola-chen/ormsql/clause"
	"github.com/nikola-chen/ormsql/dialect"
)

// SelectStatement builds SELECT statements.
type SelectStatement struct {
	base
	fields []string
	where  *clause.Where
}

func newSelect(d dialect.Dialect, fields []string, table string) *SelectStatement {
	return &SelectStatement{
		base:   newBase(d, table),
		fields: append(make([]string, 0, len(fields)), fields...),
	}
}

// Fields replaces the selected fields with an explicit subset.
func (b *SelectStatement) Fields(fields ...string) *SelectStatement {
	if b.configuring() {
		b.fields = append(b.fields[:0:0], fields...)
	}
	return b
}

// SetWhere attaches a copy of where. A nil or empty clause leaves the
// statement unfiltered.
func (b *SelectStatement) SetWhere(where *clause.Where) *SelectStatement {
	if b.configuring() {
		b.where = where.Clone()
	}
	return b
}

// SQL renders "SELECT f1,f2 FROM table[ WHERE ...]".
func (b *SelectStatement) SQL() (string, error) {
	if err := b.consume("select"); err != nil {
		return "", err
	}
	fields, where := b.fields, b.where
	b.fields, b.where = nil, nil
	if len(fields) == 0 {
		return "", ErrMissingFields
	}

	var buf bytes.Buffer
	buf.Grow(64)
	buf.WriteString("SELECT ")
	writeFields(&buf, fields)
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)
	if !where.Empty() {
		buf.WriteByte(' ')
		buf.WriteString(where.SQL())
	}
	return buf.String(), nil
}

// MustSQL is like SQL but panics on error.
func (b *SelectStatement) MustSQL() string { return mustSQL(b) }
