package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/experience"
	"portfolio-backend/internal/domains/experience/repository"
	"portfolio-backend/internal/infrastructure/database"
)

func newTestService(t *testing.T) experience.Service {
	t.Helper()

	db := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, db.Connect(context.Background()))
	t.Cleanup(func() { db.Close() })

	return NewExperienceService(repository.NewSQLiteRepository(db.DB))
}

func TestCreate_DefaultType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, experience.CreateRequest{Title: "Network Engineer"})
	require.NoError(t, err)

	all, err := svc.ListAdmin(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, experience.TypeExperience, all[0].Type)
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), experience.CreateRequest{
		Title: "Time Traveler",
		Type:  "hobby",
	})
	assert.Error(t, err)
}

func TestListPublic_GroupedByType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	entries := []experience.CreateRequest{
		{Title: "ICT Trainer", Type: experience.TypeExperience, SortOrder: 2},
		{Title: "Network Engineer", Type: experience.TypeExperience, SortOrder: 1},
		{Title: "Informatics Degree", Type: experience.TypeEducation, SortOrder: 1},
	}
	for _, e := range entries {
		_, err := svc.Create(ctx, e)
		require.NoError(t, err)
	}

	public, err := svc.ListPublic(ctx)
	require.NoError(t, err)

	require.Len(t, public.Experiences, 2)
	assert.Equal(t, "Network Engineer", public.Experiences[0].Title)
	assert.Equal(t, "ICT Trainer", public.Experiences[1].Title)

	require.Len(t, public.Education, 1)
	assert.Equal(t, "Informatics Degree", public.Education[0].Title)
}
