package service

import (
	"context"
	"fmt"
	"time"

	"Association_Portal/internal/model"
	"Association_Portal/internal/pkg"
	"Association_Portal/internal/repository/database"
)

const resourceArticle = "Article"

type ArticleService struct {
	repo *database.ArticleRepository
	now  func() time.Time
}

func NewArticleService(repo *database.ArticleRepository) *ArticleService {
	return &ArticleService{repo: repo, now: time.Now}
}

type ArticleInput struct {
	Title         string `json:"title" form:"title"`
	Content       string `json:"content" form:"content"`
	Excerpt       string `json:"excerpt" form:"excerpt"`
	Author        string `json:"author" form:"author"`
	Category      string `json:"category" form:"category"`
	Tags          List   `json:"tags" form:"tags"`
	FeaturedImage string `json:"featuredImage" form:"featuredImage"`
	Status        string `json:"status" form:"status"`
}

func (in ArticleInput) merge(a *model.Article) {
	mergeString(&a.Title, in.Title)
	mergeString(&a.Content, in.Content)
	mergeString(&a.Excerpt, in.Excerpt)
	mergeString(&a.Author, in.Author)
	mergeString(&a.Category, in.Category)
	mergeList((*[]string)(&a.Tags), in.Tags)
	mergeString(&a.FeaturedImage, in.FeaturedImage)
	mergeString(&a.Status, in.Status)
}

type ArticleFilter struct {
	Status   string
	Category string
	Search   string
	PageRequest
}

func (s *ArticleService) List(ctx context.Context, f ArticleFilter) (*Page[model.Article], error) {
	q := f.query("created_at DESC, id DESC",
		database.Eq("status", f.Status),
		database.Eq("category", f.Category),
		database.Search(f.Search, "title", "content", "excerpt"),
	)
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return newPage(items, total, f.PageRequest), nil
}

// Latest returns the most recently published articles.
func (s *ArticleService) Latest(ctx context.Context, limit int) ([]model.Article, error) {
	items, _, err := s.repo.List(ctx, database.ListQuery{
		Scopes: []database.Scope{database.Eq("status", model.ArticlePublished)},
		Order:  "published_at DESC, id DESC",
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("latest articles: %w", err)
	}
	return items, nil
}

// Get counts a view and returns the article.
func (s *ArticleService) Get(ctx context.Context, id uint64) (*model.Article, error) {
	if err := increment(ctx, s.repo.Store, resourceArticle, id, "views"); err != nil {
		return nil, err
	}
	return findByID(ctx, s.repo.Store, resourceArticle, id)
}

func (s *ArticleService) Create(ctx context.Context, p pkg.Principal, in ArticleInput) (*model.Article, error) {
	a := &model.Article{Status: model.ArticleDraft, Tags: []string{}}
	in.merge(a)
	if a.Author == "" {
		a.Author = p.Name
	}
	a.Publish(s.now().UTC())
	if err := check(a); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return a, nil
}

func (s *ArticleService) Update(ctx context.Context, id uint64, in ArticleInput) (*model.Article, error) {
	a, err := findByID(ctx, s.repo.Store, resourceArticle, id)
	if err != nil {
		return nil, err
	}
	in.merge(a)
	a.Publish(s.now().UTC())
	if err := check(a); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return a, nil
}

func (s *ArticleService) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, s.repo.Store, resourceArticle, id)
}

// Like adds one like and returns the new total.
func (s *ArticleService) Like(ctx context.Context, id uint64) (int64, error) {
	if err := increment(ctx, s.repo.Store, resourceArticle, id, "likes"); err != nil {
		return 0, err
	}
	a, err := findByID(ctx, s.repo.Store, resourceArticle, id)
	if err != nil {
		return 0, err
	}
	return a.Likes, nil
}
