// Package config loads build-target settings: which dialect to render for
// and the entity shapes to render.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nikola-chen/ormsql/dialect"
	"github.com/nikola-chen/ormsql/internal"
	"github.com/nikola-chen/ormsql/repository"
	"github.com/nikola-chen/ormsql/schema"
)

// Config is the top-level configuration document.
type Config struct {
	// Dialect names a registered dialect ("postgres", "mysql", "sqlite", ...).
	Dialect string `yaml:"dialect"`
	// DSN resolves the dialect from a connection string when Dialect is empty.
	DSN string `yaml:"dsn"`
	// Returning enables RETURNING clauses where the dialect supports them.
	// Defaults to true.
	Returning *bool `yaml:"returning"`
	// PluralTables pluralizes table names derived from entity names.
	PluralTables bool `yaml:"plural_tables"`

	Entities []Entity `yaml:"entities"`
}

// Entity describes one entity shape.
type Entity struct {
	Name string `yaml:"name"`
	// Table defaults to the snake_case of Name.
	Table  string   `yaml:"table"`
	ID     string   `yaml:"id"`
	Fields []string `yaml:"fields"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ormsql: read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ormsql: parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the configuration for missing or malformed values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dialect) == "" && strings.TrimSpace(c.DSN) == "" {
		return errors.New("ormsql: config: one of dialect or dsn is required")
	}
	seen := make(map[string]bool, len(c.Entities))
	for i, e := range c.Entities {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return fmt.Errorf("ormsql: config: entity #%d has no name", i+1)
		}
		if seen[name] {
			return fmt.Errorf("ormsql: config: duplicate entity %s", name)
		}
		seen[name] = true
		if len(e.Fields) == 0 {
			return fmt.Errorf("ormsql: config: entity %s has no fields", name)
		}
		if e.Table != "" && !internal.IsIdent(e.Table) {
			return fmt.Errorf("ormsql: config: entity %s has invalid table %q", name, e.Table)
		}
		if e.ID != "" && !internal.IsIdent(e.ID) {
			return fmt.Errorf("ormsql: config: entity %s has invalid id %q", name, e.ID)
		}
		for _, f := range e.Fields {
			if !internal.IsIdent(f) {
				return fmt.Errorf("ormsql: config: entity %s has invalid field %q", name, f)
			}
		}
	}
	return nil
}

// ResolveDialect returns the dialect named by Dialect, or the one matching
// DSN when no name is set.
func (c *Config) ResolveDialect() (dialect.Dialect, error) {
	if name := strings.TrimSpace(c.Dialect); name != "" {
		d, ok := dialect.Get(name)
		if !ok {
			return nil, fmt.Errorf("ormsql: unsupported dialect: %s", name)
		}
		return d, nil
	}
	return dialect.FromDSN(c.DSN)
}

// Shapes converts the configured entities into schema shapes.
func (c *Config) Shapes() []schema.Shape {
	opts := schema.Options{PluralTables: c.PluralTables}
	shapes := make([]schema.Shape, 0, len(c.Entities))
	for _, e := range c.Entities {
		table := strings.TrimSpace(e.Table)
		if table == "" {
			table = schema.TableName(strings.TrimSpace(e.Name), opts)
		}
		shapes = append(shapes, schema.Shape{
			Name:   strings.TrimSpace(e.Name),
			Table:  table,
			ID:     strings.TrimSpace(e.ID),
			Fields: append([]string(nil), e.Fields...),
		})
	}
	return shapes
}

// Options returns the repository options implied by the configuration.
func (c *Config) Options() []repository.Option {
	if c.Returning != nil && !*c.Returning {
		return []repository.Option{repository.WithoutReturning()}
	}
	return nil
}
