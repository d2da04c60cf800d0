package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/nikola-chen/ormsql/dialect"
	"github.com/nikola-chen/ormsql/repository"
)

// The rendered statements run unchanged against a real engine.
func TestStatementsExecuteOnSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, `CREATE TABLE entity (id INTEGER PRIMARY KEY, title TEXT, description TEXT, others TEXT)`)
	require.NoError(t, err)

	st, err := repository.Generate(entityShape, dialect.SQLite())
	require.NoError(t, err)

	type row struct {
		ID                         int64
		Title, Description, Others string
	}
	scan := func(r *sql.Row) row {
		var got row
		require.NoError(t, r.Scan(&got.ID, &got.Title, &got.Description, &got.Others))
		return got
	}

	created := scan(db.QueryRowContext(ctx, st.Create, "first", "a description", "1,2"))
	assert.Equal(t, row{ID: 1, Title: "first", Description: "a description", Others: "1,2"}, created)

	found := scan(db.QueryRowContext(ctx, st.FindByID, created.ID))
	assert.Equal(t, created, found)

	updated := scan(db.QueryRowContext(ctx, st.Update, "renamed", "changed", "3", created.ID))
	assert.Equal(t, row{ID: 1, Title: "renamed", Description: "changed", Others: "3"}, updated)

	rows, err := db.QueryContext(ctx, st.Find)
	require.NoError(t, err)
	n := 0
	for rows.Next() {
		n++
	}
	require.NoError(t, rows.Err())
	require.NoError(t, rows.Close())
	assert.Equal(t, 1, n)

	deleted := scan(db.QueryRowContext(ctx, st.Delete, created.ID))
	assert.Equal(t, updated, deleted)

	err = db.QueryRowContext(ctx, st.FindByID, created.ID).Scan(new(int64), new(string), new(string), new(string))
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
