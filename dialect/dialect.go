package dialect

import (
	"strings"
	"sync"
)

// Dialect decides how bound parameters are spelled inside a statement.
//
// A statement is rendered with exactly one Dialect, so numbered and positional
// placeholders never mix within the same SQL string.
type Dialect interface {
	// Name returns the name of the dialect.
	Name() string
	// Placeholder returns the placeholder token for the 1-based argument n.
	Placeholder(n int) string
	// SupportsReturning reports whether the dialect supports the RETURNING clause.
	SupportsReturning() bool
}

var (
	mu       sync.RWMutex
	dialects = map[string]Dialect{}
)

// Register registers a dialect for a driver.
func Register(driverName string, d Dialect) {
	mu.Lock()
	defer mu.Unlock()
	dialects[normalizeName(driverName)] = d
}

// Get returns the dialect for a driver.
func Get(driverName string) (Dialect, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := dialects[normalizeName(driverName)]
	return d, ok
}

// MustGet returns the dialect for a driver or panics if it is not registered.
func MustGet(driverName string) Dialect {
	d, ok := Get(driverName)
	if !ok || d == nil {
		panic("ormsql: unsupported dialect: " + driverName)
	}
	return d
}

// Names returns the registered driver names.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(dialects))
	for n := range dialects {
		names = append(names, n)
	}
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
