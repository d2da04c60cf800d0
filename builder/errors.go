package builder

import "errors"

var (
	// ErrNilDialect is returned when a statement has no placeholder dialect.
	ErrNilDialect = errors.New("ormsql: nil dialect")
	// ErrMissingTable is returned when a statement has a blank table name.
	ErrMissingTable = errors.New("ormsql: missing table")
	// ErrInvalidTable is returned when the table name is not a plain identifier.
	ErrInvalidTable = errors.New("ormsql: invalid table identifier")
	// ErrMissingFields is returned when SELECT, INSERT or UPDATE has no fields.
	ErrMissingFields = errors.New("ormsql: missing fields")
	// ErrMissingWhere is returned when UPDATE or DELETE has no predicate.
	ErrMissingWhere = errors.New("ormsql: missing where clause")
	// ErrRendered is returned when a statement is rendered a second time.
	ErrRendered = errors.New("ormsql: statement already rendered")
)
