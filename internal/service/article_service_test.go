package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Association_Portal/internal/model"
	"Association_Portal/internal/pkg"
	"Association_Portal/internal/repository/database"
)

var editor = pkg.Principal{ID: 1, Username: "ama", Role: model.RoleEditor, Name: "Ama Mensah"}

func newArticleService(t *testing.T) *ArticleService {
	return NewArticleService(database.NewArticleRepository(newTestDB(t)))
}

func TestArticleService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newArticleService(t)
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	created, err := svc.Create(ctx, editor, ArticleInput{
		Title:    "Welcome week",
		Content:  "Full programme",
		Excerpt:  "Programme",
		Category: "news",
		Tags:     ListOf("freshers", "campus"),
		Status:   model.ArticlePublished,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ama Mensah", created.Author)
	require.NotNil(t, created.PublishedAt)
	assert.True(t, now.Equal(*created.PublishedAt))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Content, got.Content)
	assert.Equal(t, created.Excerpt, got.Excerpt)
	assert.Equal(t, created.Category, got.Category)
	assert.Equal(t, []string{"freshers", "campus"}, []string(got.Tags))
	assert.EqualValues(t, 1, got.Views)
}

func TestArticleService_CreateRequiresFields(t *testing.T) {
	svc := newArticleService(t)
	_, err := svc.Create(context.Background(), editor, ArticleInput{Content: "no title"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title is required", verr.Message)
}

func TestArticleService_UpdateMergesProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc := newArticleService(t)
	first := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(first)

	a, err := svc.Create(ctx, editor, ArticleInput{Title: "Old", Content: "Body", Category: "news", Tags: ListOf("x")})
	require.NoError(t, err)
	assert.Equal(t, model.ArticleDraft, a.Status)
	assert.Nil(t, a.PublishedAt)

	updated, err := svc.Update(ctx, a.ID, ArticleInput{Title: "New", Content: "", Status: model.ArticlePublished})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Body", updated.Content)
	assert.Equal(t, "news", updated.Category)
	assert.Equal(t, []string{"x"}, []string(updated.Tags))
	require.NotNil(t, updated.PublishedAt)

	svc.now = fixedClock(first.Add(72 * time.Hour))
	_, err = svc.Update(ctx, a.ID, ArticleInput{Status: model.ArticleDraft})
	require.NoError(t, err)
	again, err := svc.Update(ctx, a.ID, ArticleInput{Status: model.ArticlePublished})
	require.NoError(t, err)
	assert.True(t, first.Equal(*again.PublishedAt))

	_, err = svc.Update(ctx, 999, ArticleInput{Title: "x"})
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestArticleService_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	svc := newArticleService(t)
	a, err := svc.Create(ctx, editor, ArticleInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))
	var nf *NotFoundError
	require.ErrorAs(t, svc.Delete(ctx, a.ID), &nf)
	assert.Equal(t, "Article not found", nf.Error())
}

func TestArticleService_ListPagination(t *testing.T) {
	ctx := context.Background()
	svc := newArticleService(t)
	for i := 0; i < 15; i++ {
		_, err := svc.Create(ctx, editor, ArticleInput{Title: fmt.Sprintf("P%d", i), Content: "c", Status: model.ArticlePublished})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, editor, ArticleInput{Title: "Draft", Content: "c"})
	require.NoError(t, err)

	page, err := svc.List(ctx, ArticleFilter{Status: model.ArticlePublished, PageRequest: NewPageRequest("2", "10")})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	assert.EqualValues(t, 15, page.Total)

	page, err = svc.List(ctx, ArticleFilter{Status: model.ArticlePublished, PageRequest: NewPageRequest("922337203685477581", "100")})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, MaxPage, page.CurrentPage)

	page, err = svc.List(ctx, ArticleFilter{Search: "draft", PageRequest: NewPageRequest("", "")})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	latest, err := svc.Latest(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, latest, 3)
	for _, a := range latest {
		assert.Equal(t, model.ArticlePublished, a.Status)
	}
}

func TestArticleService_Like(t *testing.T) {
	ctx := context.Background()
	svc := newArticleService(t)
	a, err := svc.Create(ctx, editor, ArticleInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	likes, err := svc.Like(ctx, a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, likes)
	likes, err = svc.Like(ctx, a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, likes)

	_, err = svc.Like(ctx, 12345)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}
