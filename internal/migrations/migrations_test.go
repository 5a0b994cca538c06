package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"20250101000001_create_users.sql",
		"20250101000002_create_planets.sql",
	}, files)

	for _, f := range files {
		body, err := fs.ReadFile(Migrations, f)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up")
		assert.Contains(t, string(body), "-- +goose Down")
	}
}

func TestMigrations_UnboundedText(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)

	for _, f := range files {
		body, err := fs.ReadFile(Migrations, f)
		require.NoError(t, err)
		assert.NotContains(t, strings.ToUpper(string(body)), "VARCHAR", f)
	}
}
