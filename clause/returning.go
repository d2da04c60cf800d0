package clause

import (
	"strings"

	"github.com/nikola-chen/ormsql/internal"
)

// Returning renders a RETURNING column list led by the id column.
type Returning struct {
	id     string
	fields []string
}

// NewReturning creates a Returning over a copy of fields. The id column is
// always listed first and filtered out of the remaining fields, whether or
// not fields contains it.
func NewReturning(fields []string, id string) *Returning {
	return &Returning{
		id:     strings.TrimSpace(id),
		fields: append(make([]string, 0, len(fields)), fields...),
	}
}

// ID returns the id column.
func (r *Returning) ID() string { return r.id }

// SQL renders "RETURNING id,f1,f2". No separator is written after the id
// when no other field remains.
func (r *Returning) SQL() string {
	var buf strings.Builder
	buf.Grow(16 + len(r.id) + 8*len(r.fields))
	buf.WriteString("RETURNING ")
	wrote := 0
	if r.id != "" {
		buf.WriteString(r.id)
		wrote++
	}
	for _, f := range internal.Without(r.fields, r.id) {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if wrote > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(f)
		wrote++
	}
	return buf.String()
}
