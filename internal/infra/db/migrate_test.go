//go:build unit

package db

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations(t *testing.T) {
	t.Run("sorted by file name and non-sql files ignored", func(t *testing.T) {
		fsys := fstest.MapFS{
			"002_bookings.sql": {Data: []byte("CREATE TABLE bookings ();")},
			"001_init.sql":     {Data: []byte("CREATE TABLE users ();")},
			"README.md":        {Data: []byte("docs")},
			"010_reviews.sql":  {Data: []byte("CREATE TABLE reviews ();")},
			"nested/003_x.sql": {Data: []byte("SELECT 1;")},
		}

		migrations, err := LoadMigrations(fsys)

		require.NoError(t, err)
		require.Len(t, migrations, 3)
		assert.Equal(t, "001_init", migrations[0].Version)
		assert.Equal(t, "CREATE TABLE users ();", migrations[0].SQL)
		assert.Equal(t, "002_bookings", migrations[1].Version)
		assert.Equal(t, "010_reviews", migrations[2].Version)
	})

	t.Run("empty directory", func(t *testing.T) {
		migrations, err := LoadMigrations(fstest.MapFS{})

		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}

func TestProjectMigrationsLoad(t *testing.T) {
	migrations, err := LoadMigrations(os.DirFS("../../../migrations"))

	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	for _, m := range migrations {
		assert.NotEmpty(t, m.SQL, m.Version)
	}
}
