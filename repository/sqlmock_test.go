package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/nikola-chen/ormsql/dialect"
	"github.com/nikola-chen/ormsql/repository"
)

// Numbered statements reach the driver byte for byte with their arguments in
// placeholder order.
func TestStatementsReachDriverVerbatim(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	st, err := repository.Generate(entityShape, dialect.Postgres())
	require.NoError(t, err)

	columns := []string{"id", "title", "description", "others"}
	mock.ExpectQuery(st.Update).
		WithArgs("title", "description", "others", 7).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(7, "title", "description", "others"))
	mock.ExpectQuery(st.Delete).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(7, "title", "description", "others"))

	ctx := context.Background()
	var id int64
	var title, description, others string
	require.NoError(t, db.QueryRowContext(ctx, st.Update, "title", "description", "others", 7).Scan(&id, &title, &description, &others))
	require.NoError(t, db.QueryRowContext(ctx, st.Delete, 7).Scan(&id, &title, &description, &others))
	require.NoError(t, mock.ExpectationsWereMet())
}
