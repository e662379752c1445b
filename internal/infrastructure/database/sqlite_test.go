package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()

	db := NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, db.Connect(context.Background()))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestConnect_CreatesSchema(t *testing.T) {
	db := newTestDB(t)

	tables := []string{"profile", "skills", "services", "experiences", "portfolio", "blogs", "social_links", "admin"}
	for _, table := range tables {
		var count int
		err := db.DB.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, 0, count, "table %s should start empty", table)
	}
}

func TestHealthCheck(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, db.HealthCheck(context.Background()))

	uninitialized := NewSQLiteDB("unused.db")
	assert.Error(t, uninitialized.HealthCheck(context.Background()))
}

func TestSeed_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Seed(ctx))

	var profiles, skills int
	require.NoError(t, db.DB.QueryRow(`SELECT COUNT(*) FROM profile`).Scan(&profiles))
	require.NoError(t, db.DB.QueryRow(`SELECT COUNT(*) FROM skills`).Scan(&skills))
	assert.Equal(t, 1, profiles)
	assert.Greater(t, skills, 0)

	// Lần 2 phải là no-op
	require.NoError(t, db.Seed(ctx))

	var profilesAfter, skillsAfter int
	require.NoError(t, db.DB.QueryRow(`SELECT COUNT(*) FROM profile`).Scan(&profilesAfter))
	require.NoError(t, db.DB.QueryRow(`SELECT COUNT(*) FROM skills`).Scan(&skillsAfter))
	assert.Equal(t, profiles, profilesAfter)
	assert.Equal(t, skills, skillsAfter)
}

func TestSeed_BlogsArePublished(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Seed(context.Background()))

	var drafts int
	require.NoError(t, db.DB.QueryRow(`SELECT COUNT(*) FROM blogs WHERE published = 0`).Scan(&drafts))
	assert.Equal(t, 0, drafts, "seeded blogs should all be published")
}
