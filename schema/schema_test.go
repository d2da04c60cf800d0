package schema_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikola-chen/ormsql/schema"
)

type User struct {
	ID   int    `db:"id,pk"`
	Name string `db:"name"`
	Age  int    `db:"age"`
}

func (User) TableName() string { return "users" }

type Entity struct {
	ID          int64 `db:"id"`
	Title       string
	Description string
	Others      []uint32
	secret      string
	Skipped     string `db:"-"`
}

type Timestamps struct {
	CreatedAt string
	UpdatedAt string
}

type BlogPost struct {
	PostID int64 `db:"post_id,pk"`
	Title  string
	Timestamps
}

type NoID struct {
	Name  string
	Score int
}

func TestParseSchema(t *testing.T) {
	s, err := schema.Parse(User{})
	require.NoError(t, err)
	assert.Equal(t, "users", s.Table)
	require.NotNil(t, s.PrimaryKey)
	assert.Equal(t, "id", s.PrimaryKey.Column)
	assert.NotNil(t, s.ByColumn["name"])
	assert.NotNil(t, s.ByColumn["age"])
}

func TestShape(t *testing.T) {
	s, err := schema.Parse(&Entity{})
	require.NoError(t, err)

	assert.Equal(t, schema.Shape{
		Name:   "Entity",
		Table:  "entity",
		ID:     "id",
		Fields: []string{"title", "description", "others"},
	}, s.Shape())
}

func TestShapeEmbeddedAndCustomID(t *testing.T) {
	s, err := schema.Parse(BlogPost{})
	require.NoError(t, err)

	sh := s.Shape()
	assert.Equal(t, "blog_post", sh.Table)
	assert.Equal(t, "post_id", sh.ID)
	assert.Equal(t, []string{"title", "created_at", "updated_at"}, sh.Fields)
	assert.Equal(t, []int{2, 1}, s.ByColumn["updated_at"].Index)
}

func TestShapeWithoutID(t *testing.T) {
	s, err := schema.Parse(NoID{})
	require.NoError(t, err)
	assert.Nil(t, s.PrimaryKey)
	assert.Equal(t, "", s.Shape().ID)
	assert.Equal(t, []string{"name", "score"}, s.Shape().Fields)
}

func TestPluralTables(t *testing.T) {
	s, err := schema.ParseWith(BlogPost{}, schema.Options{PluralTables: true})
	require.NoError(t, err)
	assert.Equal(t, "blog_posts", s.Table)

	s, err = schema.ParseWith(Entity{}, schema.Options{PluralTables: true})
	require.NoError(t, err)
	assert.Equal(t, "entities", s.Table)

	// TableNamer wins over derived names
	s, err = schema.ParseWith(User{}, schema.Options{PluralTables: true})
	require.NoError(t, err)
	assert.Equal(t, "users", s.Table)

	// default options are cached separately
	s, err = schema.Parse(BlogPost{})
	require.NoError(t, err)
	assert.Equal(t, "blog_post", s.Table)
}

func TestColumnName(t *testing.T) {
	tests := map[string]string{
		"ID":        "id",
		"UserID":    "user_id",
		"CreatedAt": "created_at",
		"HTTPCode":  "http_code",
		"name":      "name",
		"Émile":     "émile",
	}
	for in, want := range tests {
		assert.Equal(t, want, schema.ColumnName(in), in)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := schema.Parse(nil)
	require.ErrorIs(t, err, schema.ErrInvalidModel)

	_, err = schema.Parse(42)
	require.Error(t, err)

	_, err = schema.ParseType(nil, schema.Options{})
	require.ErrorIs(t, err, schema.ErrInvalidModel)

	type twoKeys struct {
		A int `db:"a,pk"`
		B int `db:"b,pk"`
	}
	_, err = schema.Parse(twoKeys{})
	require.ErrorContains(t, err, "more than one primary key")

	type dupColumn struct {
		A int `db:"x"`
		B int `db:"X"`
	}
	_, err = schema.Parse(dupColumn{})
	require.ErrorContains(t, err, `to column "X"`)

	_, err = schema.ParseType(reflect.TypeOf(struct{ A int }{}), schema.Options{})
	require.ErrorContains(t, err, "anonymous struct")
}

func TestParseSchemaConcurrent(t *testing.T) {
	type ConcurrentUser struct {
		ID   int    `db:"id,pk"`
		Name string `db:"name"`
		Age  int    `db:"age"`
	}

	const n = 64
	out := make([]*schema.Schema, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			out[i], errs[i] = schema.Parse(ConcurrentUser{})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "parse %d", i)
	}
	first := out[0]
	require.NotNil(t, first)
	for i, s := range out {
		if s != first {
			t.Fatalf("schema pointer mismatch at %d", i)
		}
	}
}
