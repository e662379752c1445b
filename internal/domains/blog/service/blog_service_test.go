package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/internal/domains/blog/repository"
	"portfolio-backend/internal/infrastructure/database"
)

func newTestService(t *testing.T) blog.Service {
	t.Helper()

	db := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, db.Connect(context.Background()))
	t.Cleanup(func() { db.Close() })

	return NewBlogService(repository.NewSQLiteRepository(db.DB))
}

func TestCreate_SlugDerivedFromTitle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, blog.CreateRequest{
		Title:     "Cara Konfigurasi MikroTik!!",
		Published: true,
	})
	require.NoError(t, err)

	post, err := svc.GetPublishedBySlug(ctx, "cara-konfigurasi-mikrotik")
	require.NoError(t, err)
	assert.Equal(t, "Cara Konfigurasi MikroTik!!", post.Title)
}

func TestCreate_ExplicitSlugWins(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, blog.CreateRequest{
		Title:     "Some Title",
		Slug:      "custom-slug",
		Published: true,
	})
	require.NoError(t, err)

	_, err = svc.GetPublishedBySlug(ctx, "custom-slug")
	assert.NoError(t, err)
}

func TestCreate_DuplicateSlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, blog.CreateRequest{Title: "Hello World", Published: true})
	require.NoError(t, err)

	// Title khác nhưng derive ra cùng slug
	_, _, err = svc.Create(ctx, blog.CreateRequest{Title: "Hello, World!"})
	assert.True(t, errors.Is(err, blog.ErrDuplicateSlug))

	// Bảng không được thay đổi bởi insert fail
	posts, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestListPublished_ExcludesDrafts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, blog.CreateRequest{Title: "Published Post", Published: true})
	require.NoError(t, err)
	_, _, err = svc.Create(ctx, blog.CreateRequest{Title: "Draft Post"})
	require.NoError(t, err)

	public, err := svc.ListSummaries(ctx, false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "published-post", public[0].Slug)

	// ?all=true view thấy cả draft
	withDrafts, err := svc.ListSummaries(ctx, true)
	require.NoError(t, err)
	assert.Len(t, withDrafts, 2)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetPublishedBySlug_DraftIsNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, blog.CreateRequest{Title: "Draft Post"})
	require.NoError(t, err)

	// Draft phải trông y như không tồn tại
	_, err = svc.GetPublishedBySlug(ctx, "draft-post")
	assert.True(t, errors.Is(err, blog.ErrNotFound))

	_, err = svc.GetPublishedBySlug(ctx, "never-existed")
	assert.True(t, errors.Is(err, blog.ErrNotFound))
}

func TestUpdate_PublishDraft(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, _, err := svc.Create(ctx, blog.CreateRequest{Title: "Draft Post", Content: "body"})
	require.NoError(t, err)

	err = svc.Update(ctx, id, blog.UpdateRequest{Title: "Draft Post", Content: "body", Published: true})
	require.NoError(t, err)

	post, err := svc.GetPublishedBySlug(ctx, "draft-post")
	require.NoError(t, err)
	assert.True(t, post.Published)
	assert.NotEmpty(t, post.UpdatedAt)
}

func TestUpdate_DuplicateSlugRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, blog.CreateRequest{Title: "First Post"})
	require.NoError(t, err)
	id, _, err := svc.Create(ctx, blog.CreateRequest{Title: "Second Post"})
	require.NoError(t, err)

	err = svc.Update(ctx, id, blog.UpdateRequest{Title: "Second Post", Slug: "first-post"})
	assert.True(t, errors.Is(err, blog.ErrDuplicateSlug))
}

func TestDelete_Idempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, _, err := svc.Create(ctx, blog.CreateRequest{Title: "Post"})
	require.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, id))
	assert.NoError(t, svc.Delete(ctx, id))
}
