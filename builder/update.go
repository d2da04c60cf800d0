package builder

import (
	"bytes"
	"strings"

	"github.com/nikola-chen/ormsql/clause"
	"github.com/nikola-chen/ormsql/dialect"
)

// UpdateStatement builds UPDATE statements. The predicate is a constructor
// argument: an UPDATE without WHERE does not render.
type UpdateStatement struct {
	base
	fields    []string
	where     *clause.Where
	returning *clause.Returning
}

func newUpdate(d dialect.Dialect, table string, where *clause.Where) *UpdateStatement {
	return &UpdateStatement{base: newBase(d, table), where: where.Clone()}
}

// SetFields sets the assigned columns. The i-th field is bound to
// placeholder i, counted from 1 within this list.
func (b *UpdateStatement) SetFields(fields []string) *UpdateStatement {
	if b.configuring() {
		b.fields = append(make([]string, 0, len(fields)), fields...)
	}
	return b
}

// SetWhere replaces the predicate conditions.
func (b *UpdateStatement) SetWhere(conditions []string) *UpdateStatement {
	if !b.configuring() {
		return b
	}
	if b.where == nil {
		b.where = clause.NewWhere()
	}
	b.where.SetConditions(conditions)
	return b
}

// SetReturning attaches a RETURNING clause.
func (b *UpdateStatement) SetReturning(r *clause.Returning) *UpdateStatement {
	if b.configuring() {
		b.returning = r
	}
	return b
}

// NextPlaceholder returns the placeholder that follows the last SET
// placeholder, for use in the predicate. With three fields a numbered
// dialect yields $4.
func (b *UpdateStatement) NextPlaceholder() string {
	if b.d == nil {
		return ""
	}
	return b.d.Placeholder(len(b.fields) + 1)
}

// SQL renders "UPDATE table SET f1 = p1,f2 = p2 WHERE ...[ RETURNING ...]".
func (b *UpdateStatement) SQL() (string, error) {
	if err := b.consume("update"); err != nil {
		return "", err
	}
	fields, where, returning := b.fields, b.where, b.returning
	b.fields, b.where, b.returning = nil, nil, nil
	if len(fields) == 0 {
		return "", ErrMissingFields
	}
	if where.Empty() {
		return "", ErrMissingWhere
	}

	var buf bytes.Buffer
	buf.Grow(128)
	buf.WriteString("UPDATE ")
	buf.WriteString(b.table)
	buf.WriteString(" SET ")
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strings.TrimSpace(f))
		buf.WriteString(" = ")
		buf.WriteString(b.d.Placeholder(i + 1))
	}
	buf.WriteByte(' ')
	buf.WriteString(where.SQL())
	if returning != nil {
		buf.WriteByte(' ')
		buf.WriteString(returning.SQL())
	}
	return buf.String(), nil
}

// MustSQL is like SQL but panics on error.
func (b *UpdateStatement) MustSQL() string { return mustSQL(b) }
