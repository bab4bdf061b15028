package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"Association_Portal/internal/model"
	"Association_Portal/internal/pkg"
	"Association_Portal/internal/repository/database"
)

const resourceEvent = "Event"

type EventService struct {
	repo      *database.EventRepository
	publisher pkg.Publisher
	log       *slog.Logger
	now       func() time.Time
}

func NewEventService(repo *database.EventRepository, publisher pkg.Publisher, log *slog.Logger) *EventService {
	return &EventService{repo: repo, publisher: publisher, log: log, now: time.Now}
}

type EventInput struct {
	Title                string    `json:"title" form:"title"`
	Description          string    `json:"description" form:"description"`
	Date                 string    `json:"date" form:"date"`
	Time                 string    `json:"time" form:"time"`
	Location             string    `json:"location" form:"location"`
	Category             string    `json:"category" form:"category"`
	RegistrationRequired Opt[bool] `json:"registrationRequired" form:"registrationRequired"`
	MaxParticipants      Opt[int]  `json:"maxParticipants" form:"maxParticipants"`
	Status               string    `json:"status" form:"status"`
	FeaturedImage        string    `json:"featuredImage" form:"featuredImage"`
	// Gallery shares its form field with uploaded files, so form bodies fill
	// it by hand.
	Gallery List `json:"gallery" form:"-"`
	// GalleryUploads are URLs of files uploaded with the request, appended
	// to the gallery.
	GalleryUploads []string `json:"-" form:"-"`
}

func (in EventInput) merge(e *model.Event) error {
	mergeString(&e.Title, in.Title)
	mergeString(&e.Description, in.Description)
	if err := mergeDate("date", &e.Date, in.Date); err != nil {
		return err
	}
	mergeString(&e.Time, in.Time)
	mergeString(&e.Location, in.Location)
	mergeString(&e.Category, in.Category)
	mergeOpt(&e.RegistrationRequired, in.RegistrationRequired)
	mergeOpt(&e.MaxParticipants, in.MaxParticipants)
	mergeString(&e.Status, in.Status)
	mergeString(&e.FeaturedImage, in.FeaturedImage)
	mergeList((*[]string)(&e.Gallery), in.Gallery)
	e.Gallery = append(e.Gallery, in.GalleryUploads...)
	return nil
}

type EventFilter struct {
	Status   string
	Category string
	Search   string
	// Upcoming restricts to events that have not started yet, soonest first.
	Upcoming  bool
	Ascending bool
	PageRequest
}

func (s *EventService) List(ctx context.Context, f EventFilter) (*Page[model.Event], error) {
	scopes := []database.Scope{
		database.Eq("status", f.Status),
		database.Eq("category", f.Category),
		database.Search(f.Search, "title", "description", "location"),
	}
	order := "date DESC, id DESC"
	if f.Upcoming {
		scopes = append(scopes, database.Where("date >= ?", s.now().UTC()))
	}
	if f.Upcoming || f.Ascending {
		order = "date ASC, id ASC"
	}
	items, total, err := s.repo.List(ctx, f.query(order, scopes...))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return newPage(items, total, f.PageRequest), nil
}

// Upcoming returns the next events that are not cancelled, soonest first.
func (s *EventService) Upcoming(ctx context.Context, limit int) ([]model.Event, error) {
	return s.latest(ctx, database.ListQuery{
		Scopes: []database.Scope{
			database.Where("date >= ?", s.now().UTC()),
			database.Where("status <> ?", model.EventCancelled),
		},
		Order: "date ASC, id ASC",
		Limit: limit,
	})
}

// Past returns the most recent events that already took place.
func (s *EventService) Past(ctx context.Context, limit int) ([]model.Event, error) {
	return s.latest(ctx, database.ListQuery{
		Scopes: []database.Scope{database.Where("date < ?", s.now().UTC())},
		Order:  "date DESC, id DESC",
		Limit:  limit,
	})
}

func (s *EventService) latest(ctx context.Context, q database.ListQuery) ([]model.Event, error) {
	items, _, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return items, nil
}

func (s *EventService) Get(ctx context.Context, id uint64) (*model.Event, error) {
	return findByID(ctx, s.repo.Store, resourceEvent, id)
}

func (s *EventService) Create(ctx context.Context, in EventInput) (*model.Event, error) {
	e := &model.Event{Gallery: []string{}}
	if err := in.merge(e); err != nil {
		return nil, err
	}
	if e.Date.IsZero() {
		return nil, invalid("date is required")
	}
	e.DeriveStatus(s.now())
	if err := check(e); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return e, nil
}

func (s *EventService) Update(ctx context.Context, id uint64, in EventInput) (*model.Event, error) {
	e, err := findByID(ctx, s.repo.Store, resourceEvent, id)
	if err != nil {
		return nil, err
	}
	if err := in.merge(e); err != nil {
		return nil, err
	}
	e.DeriveStatus(s.now())
	if err := check(e); err != nil {
		return nil, err
	}
	if err := checkCapacity(e.MaxParticipants, e.CurrentParticipants); err != nil {
		return nil, err
	}
	// registrations only move through Register
	if err := s.repo.Save(ctx, e, "current_participants"); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return e, nil
}

func (s *EventService) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, s.repo.Store, resourceEvent, id)
}

// Register takes one seat at the event. A full event is rejected without
// touching the count.
func (s *EventService) Register(ctx context.Context, id uint64) (*model.Event, error) {
	if err := join(ctx, s.repo.Store, resourceEvent, id, s.repo.Register); err != nil {
		return nil, err
	}
	e, err := findByID(ctx, s.repo.Store, resourceEvent, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, s.log, pkg.DomainEvent{
		Type:       pkg.EventRegistered,
		ResourceID: e.ID,
		Payload: map[string]any{
			"title":               e.Title,
			"currentParticipants": e.CurrentParticipants,
			"maxParticipants":     e.MaxParticipants,
		},
	})
	return e, nil
}
