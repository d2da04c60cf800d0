// Package ormsql renders parameterized CRUD statements for entity shapes.
//
// The builder package assembles single statements; this package ties schema
// extraction, dialect selection and the repository statement set together.
package ormsql

import (
	"context"

	"github.com/nikola-chen/ormsql/dialect"
	"github.com/nikola-chen/ormsql/repository"
	"github.com/nikola-chen/ormsql/schema"
)

type Dialect = dialect.Dialect
type Shape = schema.Shape
type Statements = repository.Statements
type Logger = repository.Logger
type Option = repository.Option

var (
	WithLogger       = repository.WithLogger
	WithoutReturning = repository.WithoutReturning
)

// Generate renders the statement set of s for the dialect registered under
// driverName.
func Generate(driverName string, s Shape, opts ...Option) (*Statements, error) {
	d, err := lookup(driverName)
	if err != nil {
		return nil, err
	}
	return repository.Generate(s, d, opts...)
}

// GenerateAll renders many shapes concurrently.
func GenerateAll(ctx context.Context, driverName string, shapes []Shape, opts ...Option) ([]*Statements, error) {
	d, err := lookup(driverName)
	if err != nil {
		return nil, err
	}
	return repository.GenerateAll(ctx, shapes, d, opts...)
}

// FromModel parses the struct model and renders its statement set.
func FromModel(driverName string, model any, opts ...Option) (*Statements, error) {
	d, err := lookup(driverName)
	if err != nil {
		return nil, err
	}
	return repository.FromModel(model, d, schema.Options{}, opts...)
}

// FromDSN renders the statement set of s for the dialect implied by dsn.
func FromDSN(dsn string, s Shape, opts ...Option) (*Statements, error) {
	d, err := dialect.FromDSN(dsn)
	if err != nil {
		return nil, err
	}
	return repository.Generate(s, d, opts...)
}

func lookup(driverName string) (Dialect, error) {
	d, ok := dialect.Get(driverName)
	if !ok {
		return nil, &UnsupportedDialectError{Name: driverName}
	}
	return d, nil
}

// UnsupportedDialectError reports a driver name with no registered dialect.
type UnsupportedDialectError struct {
	Name string
}

func (e *UnsupportedDialectError) Error() string {
	return "ormsql: unsupported dialect: " + e.Name
}
