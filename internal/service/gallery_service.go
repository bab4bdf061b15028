package service

import (
	"context"
	"fmt"

	"Association_Portal/internal/model"
	"Association_Portal/internal/repository/database"
)

const resourceGallery = "Gallery item"

type GalleryService struct {
	repo   *database.GalleryRepository
	events *database.EventRepository
}

func NewGalleryService(repo *database.GalleryRepository, events *database.EventRepository) *GalleryService {
	return &GalleryService{repo: repo, events: events}
}

type GalleryInput struct {
	Title       string      `json:"title" form:"title"`
	Description string      `json:"description" form:"description"`
	Type        string      `json:"type" form:"type"`
	URL         string      `json:"url" form:"url"`
	Thumbnail   string      `json:"thumbnail" form:"thumbnail"`
	Category    string      `json:"category" form:"category"`
	Tags        List        `json:"tags" form:"tags"`
	EventID     Opt[uint64] `json:"eventId" form:"eventId"`
	Featured    Opt[bool]   `json:"featured" form:"featured"`
}

func (in GalleryInput) merge(g *model.GalleryItem) {
	mergeString(&g.Title, in.Title)
	mergeString(&g.Description, in.Description)
	mergeString(&g.Type, in.Type)
	mergeString(&g.URL, in.URL)
	mergeString(&g.Thumbnail, in.Thumbnail)
	mergeString(&g.Category, in.Category)
	mergeList((*[]string)(&g.Tags), in.Tags)
	if id, ok := in.EventID.Get(); ok {
		g.EventID = &id
		g.Event = nil
	}
	mergeOpt(&g.Featured, in.Featured)
}

type GalleryFilter struct {
	Type     string
	Category string
	EventID  uint64
	Featured bool
	Search   string
	PageRequest
}

func (s *GalleryService) List(ctx context.Context, f GalleryFilter) (*Page[model.GalleryItem], error) {
	scopes := []database.Scope{
		database.Eq("type", f.Type),
		database.Eq("category", f.Category),
		database.Search(f.Search, "title", "description"),
	}
	if f.EventID > 0 {
		scopes = append(scopes, database.Eq("event_id", f.EventID))
	}
	if f.Featured {
		scopes = append(scopes, database.Eq("featured", true))
	}
	q := f.query("created_at DESC, id DESC", scopes...)
	q.Preload = []string{"Event"}
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return newPage(items, total, f.PageRequest), nil
}

// Featured returns the newest featured items.
func (s *GalleryService) Featured(ctx context.Context, limit int) ([]model.GalleryItem, error) {
	items, _, err := s.repo.List(ctx, database.ListQuery{
		Scopes:  []database.Scope{database.Eq("featured", true)},
		Order:   "created_at DESC, id DESC",
		Limit:   limit,
		Preload: []string{"Event"},
	})
	if err != nil {
		return nil, fmt.Errorf("featured gallery: %w", err)
	}
	return items, nil
}

// Get counts a view and returns the item.
func (s *GalleryService) Get(ctx context.Context, id uint64) (*model.GalleryItem, error) {
	if err := increment(ctx, s.repo.Store, resourceGallery, id, "views"); err != nil {
		return nil, err
	}
	return findByID(ctx, s.repo.Store, resourceGallery, id, "Event")
}

func (s *GalleryService) Create(ctx context.Context, in GalleryInput) (*model.GalleryItem, error) {
	g := &model.GalleryItem{Type: model.MediaImage, Tags: []string{}}
	in.merge(g)
	if err := check(g); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("create gallery item: %w", err)
	}
	return g, nil
}

func (s *GalleryService) Update(ctx context.Context, id uint64, in GalleryInput) (*model.GalleryItem, error) {
	g, err := findByID(ctx, s.repo.Store, resourceGallery, id)
	if err != nil {
		return nil, err
	}
	in.merge(g)
	if err := check(g); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("update gallery item: %w", err)
	}
	return g, nil
}

func (s *GalleryService) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, s.repo.Store, resourceGallery, id)
}

func (s *GalleryService) Like(ctx context.Context, id uint64) (int64, error) {
	if err := increment(ctx, s.repo.Store, resourceGallery, id, "likes"); err != nil {
		return 0, err
	}
	g, err := findByID(ctx, s.repo.Store, resourceGallery, id)
	if err != nil {
		return 0, err
	}
	return g.Likes, nil
}

// BulkCreate adds one image item per uploaded URL to the event's gallery.
// Items without a title are named after the event.
func (s *GalleryService) BulkCreate(ctx context.Context, eventID uint64, urls []string, in GalleryInput) ([]model.GalleryItem, error) {
	if len(urls) == 0 {
		return nil, invalid("No images uploaded")
	}
	event, err := findByID(ctx, s.events.Store, resourceEvent, eventID)
	if err != nil {
		return nil, err
	}

	items := make([]model.GalleryItem, 0, len(urls))
	for i, url := range urls {
		g := model.GalleryItem{
			Title:    fmt.Sprintf("%s - Image %d", event.Title, i+1),
			Type:     model.MediaImage,
			Category: event.Category,
			Tags:     []string{},
		}
		in.merge(&g)
		g.URL = url
		g.EventID = &event.ID
		if err := check(g); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	if err := s.repo.CreateBatch(ctx, items); err != nil {
		return nil, fmt.Errorf("bulk create gallery: %w", err)
	}
	return items, nil
}
