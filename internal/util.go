// Package internal holds identifier helpers shared by the clause, builder and
// schema packages. It is not part of the public API.
package internal

import (
	"strings"
	"unicode"
)

// NormalizeColumn reduces a column reference to a comparable key: surrounding
// whitespace and quote characters are dropped, a table qualifier is removed
// (users.id -> id) and the result is lower-cased.
func NormalizeColumn(c string) string {
	c = strings.TrimSpace(c)
	c = strings.ReplaceAll(c, "`", "")
	c = strings.ReplaceAll(c, "\"", "")
	if i := strings.LastIndexByte(c, '.'); i >= 0 {
		c = c[i+1:]
	}
	return strings.ToLower(c)
}

// SameColumn reports whether a and b name the same column.
func SameColumn(a, b string) bool {
	na := NormalizeColumn(a)
	return na != "" && na == NormalizeColumn(b)
}

// Without returns a copy of fields with every occurrence of column removed.
// The relative order of the remaining fields is preserved.
func Without(fields []string, column string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if SameColumn(f, column) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// IsIdent reports whether s is a plain SQL identifier, optionally qualified
// with dots (schema.table).
func IsIdent(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, p := range strings.Split(s, ".") {
		if !isSimpleIdent(p) {
			return false
		}
	}
	return true
}

func isSimpleIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if r != '_' && !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
