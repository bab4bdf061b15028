package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"Association_Portal/internal/model"
	"Association_Portal/internal/pkg"
	"Association_Portal/internal/repository/database"
)

const (
	resourceBook       = "Book"
	resourceDiscussion = "Discussion"
)

type BookClubService struct {
	books       *database.BookRepository
	discussions *database.DiscussionRepository
	publisher   pkg.Publisher
	log         *slog.Logger
	now         func() time.Time
}

func NewBookClubService(books *database.BookRepository, discussions *database.DiscussionRepository, publisher pkg.Publisher, log *slog.Logger) *BookClubService {
	return &BookClubService{books: books, discussions: discussions, publisher: publisher, log: log, now: time.Now}
}

type BookInput struct {
	Title       string `json:"title" form:"title"`
	Author      string `json:"author" form:"author"`
	Description string `json:"description" form:"description"`
	Genre       string `json:"genre" form:"genre"`
	CoverImage  string `json:"coverImage" form:"coverImage"`
	Status      string `json:"status" form:"status"`
	StartDate   string `json:"startDate" form:"startDate"`
	EndDate     string `json:"endDate" form:"endDate"`
}

func (in BookInput) merge(b *model.Book) error {
	mergeString(&b.Title, in.Title)
	mergeString(&b.Author, in.Author)
	mergeString(&b.Description, in.Description)
	mergeString(&b.Genre, in.Genre)
	mergeString(&b.CoverImage, in.CoverImage)
	mergeString(&b.Status, in.Status)
	if err := mergeDatePtr("startDate", &b.StartDate, in.StartDate); err != nil {
		return err
	}
	return mergeDatePtr("endDate", &b.EndDate, in.EndDate)
}

type ReviewInput struct {
	Name    string `json:"name" form:"name"`
	Rating  int    `json:"rating" form:"rating"`
	Comment string `json:"comment" form:"comment"`
}

type DiscussionInput struct {
	BookID          Opt[uint64] `json:"bookId" form:"bookId"`
	Title           string      `json:"title" form:"title"`
	Description     string      `json:"description" form:"description"`
	Date            string      `json:"date" form:"date"`
	Time            string      `json:"time" form:"time"`
	Location        string      `json:"location" form:"location"`
	Facilitator     string      `json:"facilitator" form:"facilitator"`
	MaxParticipants Opt[int]    `json:"maxParticipants" form:"maxParticipants"`
	Status          string      `json:"status" form:"status"`
}

func (in DiscussionInput) merge(d *model.Discussion) error {
	if id, ok := in.BookID.Get(); ok {
		d.BookID = id
		d.Book = nil
	}
	mergeString(&d.Title, in.Title)
	mergeString(&d.Description, in.Description)
	if err := mergeDate("date", &d.Date, in.Date); err != nil {
		return err
	}
	mergeString(&d.Time, in.Time)
	mergeString(&d.Location, in.Location)
	mergeString(&d.Facilitator, in.Facilitator)
	mergeOpt(&d.MaxParticipants, in.MaxParticipants)
	mergeString(&d.Status, in.Status)
	return nil
}

type BookFilter struct {
	Status string
	Genre  string
	Search string
	PageRequest
}

type DiscussionFilter struct {
	Status   string
	BookID   uint64
	Upcoming bool
	PageRequest
}

func (s *BookClubService) ListBooks(ctx context.Context, f BookFilter) (*Page[model.Book], error) {
	q := f.query("created_at DESC, id DESC",
		database.Eq("status", f.Status),
		database.Eq("genre", f.Genre),
		database.Search(f.Search, "title", "author"),
	)
	items, total, err := s.books.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return newPage(items, total, f.PageRequest), nil
}

func (s *BookClubService) GetBook(ctx context.Context, id uint64) (*model.Book, error) {
	return findByID(ctx, s.books.Store, resourceBook, id)
}

// CurrentBook returns the book the club is reading now.
func (s *BookClubService) CurrentBook(ctx context.Context) (*model.Book, error) {
	b, err := s.books.Current(ctx)
	if err != nil {
		return nil, notFound("Current book", err)
	}
	return b, nil
}

func (s *BookClubService) CreateBook(ctx context.Context, in BookInput) (*model.Book, error) {
	b := &model.Book{Status: model.BookUpcoming, Reviews: []model.Review{}}
	if err := in.merge(b); err != nil {
		return nil, err
	}
	if err := check(b); err != nil {
		return nil, err
	}
	if err := s.books.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return b, nil
}

func (s *BookClubService) UpdateBook(ctx context.Context, id uint64, in BookInput) (*model.Book, error) {
	b, err := findByID(ctx, s.books.Store, resourceBook, id)
	if err != nil {
		return nil, err
	}
	if err := in.merge(b); err != nil {
		return nil, err
	}
	if err := check(b); err != nil {
		return nil, err
	}
	if err := s.books.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	return b, nil
}

func (s *BookClubService) DeleteBook(ctx context.Context, id uint64) error {
	return deleteByID(ctx, s.books.Store, resourceBook, id)
}

// AddReview appends a review and recomputes the rating. The read and the
// write are separate statements, so two concurrent reviews may lose one.
func (s *BookClubService) AddReview(ctx context.Context, id uint64, in ReviewInput) (*model.Book, error) {
	r := model.Review{
		Name:    strings.TrimSpace(in.Name),
		Rating:  in.Rating,
		Comment: strings.TrimSpace(in.Comment),
		Date:    s.now().UTC(),
	}
	if err := check(r); err != nil {
		return nil, err
	}
	b, err := findByID(ctx, s.books.Store, resourceBook, id)
	if err != nil {
		return nil, err
	}
	b.AddReview(r)
	if err := s.books.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("save review: %w", err)
	}
	return b, nil
}

func (s *BookClubService) ListDiscussions(ctx context.Context, f DiscussionFilter) (*Page[model.Discussion], error) {
	scopes := []database.Scope{database.Eq("status", f.Status)}
	if f.BookID > 0 {
		scopes = append(scopes, database.Eq("book_id", f.BookID))
	}
	order := "date DESC, id DESC"
	if f.Upcoming {
		scopes = append(scopes, database.Where("date >= ?", s.now().UTC()))
		order = "date ASC, id ASC"
	}
	q := f.query(order, scopes...)
	q.Preload = []string{"Book"}
	items, total, err := s.discussions.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list discussions: %w", err)
	}
	return newPage(items, total, f.PageRequest), nil
}

func (s *BookClubService) GetDiscussion(ctx context.Context, id uint64) (*model.Discussion, error) {
	return findByID(ctx, s.discussions.Store, resourceDiscussion, id, "Book")
}

func (s *BookClubService) CreateDiscussion(ctx context.Context, in DiscussionInput) (*model.Discussion, error) {
	d := &model.Discussion{Status: model.DiscussionUpcoming}
	if err := in.merge(d); err != nil {
		return nil, err
	}
	if d.Date.IsZero() {
		return nil, invalid("date is required")
	}
	if err := check(d); err != nil {
		return nil, err
	}
	if err := s.discussions.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create discussion: %w", err)
	}
	return s.GetDiscussion(ctx, d.ID)
}

func (s *BookClubService) UpdateDiscussion(ctx context.Context, id uint64, in DiscussionInput) (*model.Discussion, error) {
	d, err := findByID(ctx, s.discussions.Store, resourceDiscussion, id)
	if err != nil {
		return nil, err
	}
	if err := in.merge(d); err != nil {
		return nil, err
	}
	if err := check(d); err != nil {
		return nil, err
	}
	if err := checkCapacity(d.MaxParticipants, d.CurrentParticipants); err != nil {
		return nil, err
	}
	if err := s.discussions.Save(ctx, d, "current_participants"); err != nil {
		return nil, fmt.Errorf("update discussion: %w", err)
	}
	return s.GetDiscussion(ctx, d.ID)
}

func (s *BookClubService) DeleteDiscussion(ctx context.Context, id uint64) error {
	return deleteByID(ctx, s.discussions.Store, resourceDiscussion, id)
}

// JoinDiscussion takes one seat unless the discussion is full.
func (s *BookClubService) JoinDiscussion(ctx context.Context, id uint64) (*model.Discussion, error) {
	if err := join(ctx, s.discussions.Store, resourceDiscussion, id, s.discussions.Join); err != nil {
		return nil, err
	}
	d, err := s.GetDiscussion(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, s.log, pkg.DomainEvent{
		Type:       pkg.EventDiscussionJoined,
		ResourceID: d.ID,
		Payload: map[string]any{
			"bookId":              d.BookID,
			"currentParticipants": d.CurrentParticipants,
			"maxParticipants":     d.MaxParticipants,
		},
	})
	return d, nil
}
