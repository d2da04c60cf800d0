// Package schema derives the structural facts statements are built from
// (table name, id column, ordered fields) out of Go struct types.
//
// Columns come from `db` tags:
//
//	type Entity struct {
//		ID          int64  `db:"id,pk"`
//		Title       string `db:"title"`
//		Description string // column "description"
//		Internal    string `db:"-"`
//	}
//
// The table is the snake_case type name unless the type implements
// TableNamer.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/sync/singleflight"
)

// TableNamer is an interface for structs to customize their table name.
type TableNamer interface {
	TableName() string
}

// Field represents a database column mapped to a struct field.
type Field struct {
	Name       string
	Column     string
	Index      []int
	Type       reflect.Type
	PrimaryKey bool
}

// Schema represents the metadata of a struct model.
type Schema struct {
	Type     reflect.Type
	Name     string
	Table    string
	Fields   []*Field
	ByColumn map[string]*Field
	// PrimaryKey is nil when the struct has no id column.
	PrimaryKey *Field
}

// Shape is the input every statement builder works from.
type Shape struct {
	// Name is the entity name, e.g. the Go type name.
	Name string
	// Table is the table statements target.
	Table string
	// ID is the primary-key column; empty when the entity has none.
	ID string
	// Fields are the non-id columns in declaration order.
	Fields []string
}

// Shape returns the structural facts of s. The id column is kept out of
// Fields.
func (s *Schema) Shape() Shape {
	sh := Shape{Name: s.Name, Table: s.Table}
	if s.PrimaryKey != nil {
		sh.ID = s.PrimaryKey.Column
	}
	sh.Fields = make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.PrimaryKey {
			continue
		}
		sh.Fields = append(sh.Fields, f.Column)
	}
	return sh
}

// Options tunes how a struct is mapped.
type Options struct {
	// PluralTables pluralizes derived table names (blog_post -> blog_posts).
	// Names returned by TableNamer are used verbatim.
	PluralTables bool
}

var ErrInvalidModel = &schemaError{"ormsql: model must be struct or pointer to struct"}

type schemaError struct{ msg string }

func (e *schemaError) Error() string { return e.msg }

type cacheKey struct {
	t      reflect.Type
	plural bool
}

var (
	cache      sync.Map
	cacheCount atomic.Uint64
	parseGroup singleflight.Group
)

// maxSchemaCacheEntries bounds the global schema cache.
const maxSchemaCacheEntries = 1024

// Parse parses a struct model with default options.
func Parse(model any) (*Schema, error) {
	return ParseWith(model, Options{})
}

// ParseWith parses a struct model and returns its Schema. Results are cached
// per type and options.
func ParseWith(model any, opts Options) (*Schema, error) {
	if model == nil {
		return nil, ErrInvalidModel
	}
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return ParseType(t, opts)
}

// ParseType parses a struct type. Concurrent callers parsing the same type
// share one parse.
func ParseType(t reflect.Type, opts Options) (*Schema, error) {
	if t == nil {
		return nil, ErrInvalidModel
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.New("ormsql: model must be struct, got " + t.Kind().String())
	}

	key := cacheKey{t: t, plural: opts.PluralTables}
	if v, ok := cache.Load(key); ok {
		return v.(*Schema), nil
	}

	v, err, _ := parseGroup.Do(groupKey(key), func() (any, error) {
		if v, ok := cache.Load(key); ok {
			return v, nil
		}
		s, err := parseSafe(t, opts)
		if err != nil {
			return nil, err
		}
		actual, loaded := cache.LoadOrStore(key, s)
		if !loaded && cacheCount.Add(1) > maxSchemaCacheEntries {
			evict(key)
		}
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Schema), nil
}

func groupKey(k cacheKey) string {
	return fmt.Sprintf("%s|%s|%t", k.t.PkgPath(), k.t.String(), k.plural)
}

func evict(keep cacheKey) {
	cache.Range(func(k, _ any) bool {
		if k == keep {
			return true
		}
		cache.Delete(k)
		cacheCount.Add(^uint64(0))
		return true
	})
}

func parseSafe(t reflect.Type, opts Options) (s *Schema, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ormsql: schema parse panic: %v", r)
		}
	}()
	return parseSlow(t, opts)
}

func parseSlow(t reflect.Type, opts Options) (*Schema, error) {
	s := &Schema{
		Type:     t,
		Name:     t.Name(),
		Table:    TableName(t.Name(), opts),
		ByColumn: map[string]*Field{},
	}

	if tn, ok := reflect.New(t).Interface().(TableNamer); ok {
		if name := strings.TrimSpace(tn.TableName()); name != "" {
			s.Table = name
		}
	}
	if s.Table == "" {
		return nil, errors.New("ormsql: cannot derive table name for anonymous struct")
	}

	if err := parseStructFields(s, t, nil); err != nil {
		return nil, err
	}

	if s.PrimaryKey == nil {
		if f, ok := s.ByColumn["id"]; ok {
			f.PrimaryKey = true
			s.PrimaryKey = f
		}
	}
	return s, nil
}

func parseStructFields(s *Schema, t reflect.Type, parentIndex []int) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && sf.PkgPath == "" {
			if err := parseStructFields(s, sf.Type, appendIndex(parentIndex, i)); err != nil {
				return err
			}
			continue
		}
		if sf.PkgPath != "" {
			continue
		}

		tag := sf.Tag.Get("db")
		if tag == "-" {
			continue
		}

		col, opts := parseDBTag(tag)
		if col == "" {
			col = ColumnName(sf.Name)
		}

		f := &Field{
			Name:   sf.Name,
			Column: col,
			Index:  appendIndex(parentIndex, i),
			Type:   sf.Type,
		}
		if opts["pk"] || sf.Tag.Get("pk") == "true" {
			if s.PrimaryKey != nil {
				return fmt.Errorf("ormsql: %s declares more than one primary key (%s, %s)", s.Name, s.PrimaryKey.Column, col)
			}
			f.PrimaryKey = true
			s.PrimaryKey = f
		}

		if prev, ok := s.ByColumn[strings.ToLower(col)]; ok {
			return fmt.Errorf("ormsql: %s maps fields %s and %s to column %q", s.Name, prev.Name, f.Name, col)
		}
		s.Fields = append(s.Fields, f)
		s.ByColumn[strings.ToLower(col)] = f
	}
	return nil
}

func appendIndex(parent []int, i int) []int {
	if len(parent) == 0 {
		return []int{i}
	}
	idx := make([]int, 0, len(parent)+1)
	idx = append(idx, parent...)
	idx = append(idx, i)
	return idx
}

func parseDBTag(tag string) (string, map[string]bool) {
	opts := map[string]bool{}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", opts
	}
	parts := strings.Split(tag, ",")
	col := strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if p != "" {
			opts[p] = true
		}
	}
	return col, opts
}

// TableName derives a table name from an entity name.
func TableName(name string, opts Options) string {
	table := toSnake(name)
	if opts.PluralTables && table != "" {
		table = inflect.Pluralize(table)
	}
	return table
}

// ColumnName derives a column name from a struct field name (UserID -> user_id).
func ColumnName(field string) string {
	return toSnake(field)
}

func toSnake(s string) string {
	if s == "" {
		return ""
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return toSnakeUnicode(s)
		}
	}
	return toSnakeASCII(s)
}

func toSnakeASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	prevLower := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			nextLower := i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z'
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteByte(c + ('a' - 'A'))
			prevLower = false
			continue
		}
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			prevLower = c >= 'a' && c <= 'z'
			b.WriteByte(c)
			continue
		}
		if c == '_' {
			b.WriteByte('_')
			prevLower = false
		}
	}
	return b.String()
}

func toSnakeUnicode(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + 8)

	prevLower := false
	for i, r := range runes {
		if unicode.IsUpper(r) {
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			prevLower = unicode.IsLower(r)
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '_' {
			b.WriteRune('_')
			prevLower = false
		}
	}
	return b.String()
}
