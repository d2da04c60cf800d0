package builder

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nikola-chen/ormsql/dialect"
	"github.com/nikola-chen/ormsql/internal"
)

// Statement is implemented by every statement builder.
//
// SQL renders the statement once. The builder is consumed by the call: any
// later call returns ErrRendered and setters become no-ops.
type Statement interface {
	SQL() (string, error)
}

type state uint8

const (
	configuring state = iota
	rendered
)

// base carries what every statement owns: its dialect, its table and its
// lifecycle state.
type base struct {
	d     dialect.Dialect
	table string
	state state
	err   error
}

func newBase(d dialect.Dialect, table string) base {
	return base{d: d, table: strings.TrimSpace(table)}
}

func (b *base) configuring() bool {
	return b.state == configuring
}

// consume moves the statement to the rendered state and checks the parts
// every statement requires.
func (b *base) consume(kind string) error {
	if b.state == rendered {
		return ErrRendered
	}
	b.state = rendered
	if b.err != nil {
		return b.err
	}
	if b.d == nil {
		return ErrNilDialect
	}
	if b.table == "" {
		return fmt.Errorf("%w for %s", ErrMissingTable, kind)
	}
	if !internal.IsIdent(b.table) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, b.table)
	}
	return nil
}

func writeFields(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strings.TrimSpace(f))
	}
}

func mustSQL(s Statement) string {
	sqlStr, err := s.SQL()
	if err != nil {
		panic(err)
	}
	return sqlStr
}

// IDCondition renders the equality predicate "column = placeholder(n)".
func IDCondition(d dialect.Dialect, column string, n int) string {
	return strings.TrimSpace(column) + " = " + d.Placeholder(n)
}
