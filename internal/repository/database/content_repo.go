package database

import (
	"context"

	"gorm.io/gorm"

	"Association_Portal/internal/model"
)

type ArticleRepository struct {
	*Store[model.Article]
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{Store: NewStore[model.Article](db)}
}

type EventRepository struct {
	*Store[model.Event]
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{Store: NewStore[model.Event](db)}
}

// Register takes one seat unless the event is already full. It reports the
// rows affected: zero means the event is missing or at capacity.
func (r *EventRepository) Register(ctx context.Context, id uint64) (int64, error) {
	return r.IncrementWithin(ctx, id, "current_participants", "max_participants")
}

type GalleryRepository struct {
	*Store[model.GalleryItem]
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{Store: NewStore[model.GalleryItem](db)}
}

func (r *GalleryRepository) CreateBatch(ctx context.Context, items []model.GalleryItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(&items).Error
}

type BookRepository struct {
	*Store[model.Book]
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{Store: NewStore[model.Book](db)}
}

// Current returns the most recently updated book with status current.
func (r *BookRepository) Current(ctx context.Context) (*model.Book, error) {
	var b model.Book
	err := r.DB.WithContext(ctx).
		Where("status = ?", model.BookCurrent).
		Order("updated_at DESC").
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

type DiscussionRepository struct {
	*Store[model.Discussion]
}

func NewDiscussionRepository(db *gorm.DB) *DiscussionRepository {
	return &DiscussionRepository{Store: NewStore[model.Discussion](db)}
}

// Join takes one seat unless the discussion is already full.
func (r *DiscussionRepository) Join(ctx context.Context, id uint64) (int64, error) {
	return r.IncrementWithin(ctx, id, "current_participants", "max_participants")
}

type NewsletterRepository struct {
	*Store[model.Newsletter]
}

func NewNewsletterRepository(db *gorm.DB) *NewsletterRepository {
	return &NewsletterRepository{Store: NewStore[model.Newsletter](db)}
}

func (r *NewsletterRepository) FindByFileName(ctx context.Context, name string) (*model.Newsletter, error) {
	var n model.Newsletter
	if err := r.DB.WithContext(ctx).Where("file_name = ?", name).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}
