// Package repository renders the statement set of an entity: find, find by
// id, create, update and delete.
package repository

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/sync/errgroup"

	"github.com/nikola-chen/ormsql/builder"
	"github.com/nikola-chen/ormsql/clause"
	"github.com/nikola-chen/ormsql/dialect"
	"github.com/nikola-chen/ormsql/internal"
	"github.com/nikola-chen/ormsql/schema"
)

// Statements is the rendered statement set of one entity. By-id statements
// are empty when the entity has no id column.
type Statements struct {
	Entity string `yaml:"entity"`
	Table  string `yaml:"table"`
	// FindByIDName is the conventional method name for FindByID, e.g. FindById.
	FindByIDName string `yaml:"find_by_id_name,omitempty"`

	Find     string `yaml:"find"`
	FindByID string `yaml:"find_by_id,omitempty"`
	Create   string `yaml:"create"`
	Update   string `yaml:"update,omitempty"`
	Delete   string `yaml:"delete,omitempty"`
}

// Op is a named statement.
type Op struct {
	Name string
	SQL  string
}

// Ops lists the non-empty statements in a stable order.
func (s *Statements) Ops() []Op {
	ops := []Op{
		{Name: "find", SQL: s.Find},
		{Name: "find_by_id", SQL: s.FindByID},
		{Name: "create", SQL: s.Create},
		{Name: "update", SQL: s.Update},
		{Name: "delete", SQL: s.Delete},
	}
	out := ops[:0]
	for _, op := range ops {
		if op.SQL != "" {
			out = append(out, op)
		}
	}
	return out
}

// Option configures Generate.
type Option func(*generator)

// WithLogger sets the logger receiving every rendered statement.
func WithLogger(logger Logger) Option {
	return func(g *generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithoutReturning suppresses RETURNING clauses even when the dialect
// supports them.
func WithoutReturning() Option {
	return func(g *generator) {
		g.returning = false
	}
}

// ErrNilDialect is returned when Generate is called without a dialect.
var ErrNilDialect = builder.ErrNilDialect

type generator struct {
	d         dialect.Dialect
	logger    Logger
	returning bool
}

func newGenerator(d dialect.Dialect, opts []Option) *generator {
	g := &generator{d: d, logger: NopLogger{}, returning: true}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders the statement set of s.
//
// The id column leads every SELECT and RETURNING list and is never assigned
// by INSERT or UPDATE. The update predicate continues the SET numbering: with
// N fields it binds the id to placeholder N+1.
func Generate(s schema.Shape, d dialect.Dialect, opts ...Option) (*Statements, error) {
	if d == nil {
		return nil, ErrNilDialect
	}
	return newGenerator(d, opts).generate(s)
}

// FromModel parses model with schema.ParseWith and renders its statement set.
func FromModel(model any, d dialect.Dialect, sopts schema.Options, opts ...Option) (*Statements, error) {
	s, err := schema.ParseWith(model, sopts)
	if err != nil {
		return nil, err
	}
	return Generate(s.Shape(), d, opts...)
}

// GenerateAll renders the statement sets of shapes concurrently. Results keep
// the order of shapes; the first error cancels the remaining work.
func GenerateAll(ctx context.Context, shapes []schema.Shape, d dialect.Dialect, opts ...Option) ([]*Statements, error) {
	if d == nil {
		return nil, ErrNilDialect
	}
	out := make([]*Statements, len(shapes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range shapes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := newGenerator(d, opts).generate(s)
			if err != nil {
				return err
			}
			out[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *generator) generate(s schema.Shape) (*Statements, error) {
	name := s.Name
	if name == "" {
		name = s.Table
	}
	id := strings.TrimSpace(s.ID)
	fields := internal.Without(s.Fields, id)
	columns := fields
	if id != "" {
		columns = append([]string{id}, fields...)
	}
	returning := g.returning && id != "" && g.d.SupportsReturning()

	out := &Statements{Entity: name, Table: s.Table}
	var err error

	if out.Find, err = g.render(name, "find", builder.NewSelect(g.d, columns, s.Table)); err != nil {
		return nil, err
	}

	insert := builder.NewInsert(g.d, s.Table, fields)
	if returning {
		insert.SetReturning(clause.NewReturning(fields, id))
	}
	if out.Create, err = g.render(name, "create", insert); err != nil {
		return nil, err
	}

	if id == "" {
		return out, nil
	}
	out.FindByIDName = inflect.Camelize("find_by_" + id)

	find := builder.NewSelect(g.d, columns, s.Table).
		SetWhere(clause.NewWhere(builder.IDCondition(g.d, id, 1)))
	if out.FindByID, err = g.render(name, "find_by_id", find); err != nil {
		return nil, err
	}

	update := builder.NewUpdate(g.d, s.Table, clause.NewWhere()).SetFields(fields)
	update.SetWhere([]string{id + " = " + update.NextPlaceholder()})
	if returning {
		update.SetReturning(clause.NewReturning(fields, id))
	}
	if out.Update, err = g.render(name, "update", update); err != nil {
		return nil, err
	}

	del := builder.NewDelete(g.d, s.Table, clause.NewWhere(builder.IDCondition(g.d, id, 1)))
	if returning {
		del.SetReturning(clause.NewReturning(fields, id))
	}
	if out.Delete, err = g.render(name, "delete", del); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *generator) render(entity, op string, s builder.Statement) (string, error) {
	sqlStr, err := s.SQL()
	if err != nil {
		return "", fmt.Errorf("ormsql: %s %s: %w", entity, op, err)
	}
	g.logger.Printf("%s %s: %s", entity, op, sqlStr)
	return sqlStr, nil
}
