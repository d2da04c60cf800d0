package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nikola-chen/ormsql/repository"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(context.Background(), append([]string{"ormsql"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRenderText(t *testing.T) {
	out, _, err := runApp(t, "render", "--config", "testdata/entities.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "-- Entity (entity)\n")
	assert.Contains(t, out, "-- update\nUPDATE entity SET title = $1,description = $2,others = $3 WHERE id = $4 RETURNING id,title,description,others;\n")
	assert.Contains(t, out, "-- AuditLog (audit_log)\n-- find\nSELECT message FROM audit_log;\n")
	assert.NotContains(t, out, "DELETE FROM audit_log")
}

func TestRenderDialectOverride(t *testing.T) {
	out, _, err := runApp(t, "render", "-c", "testdata/entities.yaml", "--dialect", "mysql")
	require.NoError(t, err)
	assert.Contains(t, out, "DELETE FROM entity WHERE id = ?;")
	assert.NotContains(t, out, "RETURNING")
}

func TestRenderYAML(t *testing.T) {
	out, _, err := runApp(t, "render", "--config", "testdata/entities.yaml", "--format", "yaml")
	require.NoError(t, err)

	var got []repository.Statements
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "FindById", got[0].FindByIDName)
	assert.Equal(t, "SELECT id,title,description,others FROM entity WHERE id = $1", got[0].FindByID)
	assert.Equal(t, "INSERT INTO audit_log (message) VALUES ($1)", got[1].Create)
}

func TestRenderVerbose(t *testing.T) {
	_, logs, err := runApp(t, "render", "--config", "testdata/entities.yaml", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, logs, "[ormsql] ")
	assert.Contains(t, logs, "Entity delete: DELETE FROM entity WHERE id = $1")
}

func TestRenderErrors(t *testing.T) {
	_, _, err := runApp(t, "render", "--config", "testdata/missing.yaml")
	assert.Error(t, err)

	_, _, err = runApp(t, "render", "--config", "testdata/entities.yaml", "--format", "xml")
	assert.EqualError(t, err, `ormsql: unknown format "xml"`)

	_, _, err = runApp(t, "render", "--config", "testdata/entities.yaml", "--dialect", "oracle")
	assert.Error(t, err)
}

func TestDialects(t *testing.T) {
	out, _, err := runApp(t, "dialects")
	require.NoError(t, err)
	names := strings.Fields(out)
	assert.Contains(t, names, "postgres")
	assert.Contains(t, names, "mysql")
	assert.Contains(t, names, "sqlite")
	assert.IsIncreasing(t, names)
}
