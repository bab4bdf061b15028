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
	"Association_Portal/internal/validate"
)

const (
	resourceContact = "Message"
	statsWindow     = 7 * 24 * time.Hour
)

type ContactService struct {
	repo      *database.ContactRepository
	mailer    pkg.Mailer
	publisher pkg.Publisher
	log       *slog.Logger
	now       func() time.Time
}

func NewContactService(repo *database.ContactRepository, mailer pkg.Mailer, publisher pkg.Publisher, log *slog.Logger) *ContactService {
	return &ContactService{repo: repo, mailer: mailer, publisher: publisher, log: log, now: time.Now}
}

type ContactInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Subject  string `json:"subject" form:"subject"`
	Message  string `json:"message" form:"message"`
	Category string `json:"category" form:"category"`
	Priority string `json:"priority" form:"priority"`
}

type ReplyInput struct {
	Message string `json:"message"`
}

type ContactUpdate struct {
	Status   string     `json:"status"`
	Priority string     `json:"priority"`
	Category string     `json:"category"`
	Reply    ReplyInput `json:"reply"`
}

type ContactBulkUpdate struct {
	IDs      []uint64 `json:"ids"`
	Status   string   `json:"status"`
	Priority string   `json:"priority"`
}

type ContactFilter struct {
	Status   string
	Category string
	Priority string
	Search   string
	PageRequest
}

// Submit stores a message from the public contact form.
func (s *ContactService) Submit(ctx context.Context, in ContactInput, ip string) (*model.ContactMessage, error) {
	m := &model.ContactMessage{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		Category:  "general",
		Status:    model.ContactNew,
		Priority:  model.PriorityMedium,
		IPAddress: ip,
	}
	mergeString(&m.Category, in.Category)
	mergeString(&m.Priority, in.Priority)
	if err := check(m); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	publish(ctx, s.publisher, s.log, pkg.DomainEvent{
		Type:       pkg.EventContactSubmitted,
		ResourceID: m.ID,
		Payload:    map[string]any{"category": m.Category, "priority": m.Priority, "subject": m.Subject},
	})
	return m, nil
}

func (s *ContactService) List(ctx context.Context, f ContactFilter) (*Page[model.ContactMessage], error) {
	q := f.query("created_at DESC, id DESC",
		database.Eq("status", f.Status),
		database.Eq("category", f.Category),
		database.Eq("priority", f.Priority),
		database.Search(f.Search, "name", "email", "subject"),
	)
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return newPage(items, total, f.PageRequest), nil
}

// Get returns the message and marks a new one as read.
func (s *ContactService) Get(ctx context.Context, id uint64) (*model.ContactMessage, error) {
	m, err := findByID(ctx, s.repo.Store, resourceContact, id)
	if err != nil {
		return nil, err
	}
	if m.Status == model.ContactNew {
		m.Status = model.ContactRead
		if err := s.repo.Save(ctx, m); err != nil {
			return nil, fmt.Errorf("mark contact message read: %w", err)
		}
	}
	return m, nil
}

// Update changes status, priority or category and records a reply. The
// first transition into replied stamps who replied and when, and mails the
// reply to the sender.
func (s *ContactService) Update(ctx context.Context, p pkg.Principal, id uint64, in ContactUpdate) (*model.ContactMessage, error) {
	m, err := findByID(ctx, s.repo.Store, resourceContact, id)
	if err != nil {
		return nil, err
	}
	mergeString(&m.Status, in.Status)
	mergeString(&m.Priority, in.Priority)
	mergeString(&m.Category, in.Category)
	mergeString(&m.Reply.Message, in.Reply.Message)
	if err := check(m); err != nil {
		return nil, err
	}

	stamped := false
	if m.Status == model.ContactReplied {
		stamped = m.MarkReplied(replier(p), s.now().UTC())
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("update contact message: %w", err)
	}

	if stamped {
		s.sendReply(ctx, m)
		publish(ctx, s.publisher, s.log, pkg.DomainEvent{
			Type:       pkg.EventContactReplied,
			ResourceID: m.ID,
			Payload:    map[string]any{"repliedBy": m.Reply.RepliedBy},
		})
	}
	return m, nil
}

func (s *ContactService) sendReply(ctx context.Context, m *model.ContactMessage) {
	if s.mailer == nil || m.Reply.Message == "" {
		return
	}
	subject := "Re: " + m.Subject
	if err := s.mailer.Send(ctx, m.Email, subject, pkg.ReplyHTML(m.Name, m.Subject, m.Reply.Message)); err != nil {
		s.log.WarnContext(ctx, "send contact reply", "message_id", m.ID, "err", err)
	}
}

func (s *ContactService) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, s.repo.Store, resourceContact, id)
}

func (s *ContactService) Stats(ctx context.Context) (*database.ContactStats, error) {
	stats, err := s.repo.Stats(ctx, s.now().Add(-statsWindow))
	if err != nil {
		return nil, fmt.Errorf("contact stats: %w", err)
	}
	return stats, nil
}

// BulkUpdate sets status and/or priority on every listed message and
// reports how many were modified. Moving messages into replied stamps p as
// the replier on the ones that were never replied to; no mail is sent.
func (s *ContactService) BulkUpdate(ctx context.Context, p pkg.Principal, in ContactBulkUpdate) (int64, error) {
	if len(in.IDs) == 0 {
		return 0, invalid("Message IDs are required")
	}
	values := map[string]any{}
	if in.Status != "" {
		if err := checkField(validate.KindContact, "Status", "status", in.Status); err != nil {
			return 0, err
		}
		values["status"] = in.Status
	}
	if in.Priority != "" {
		if err := checkField(validate.KindContact, "Priority", "priority", in.Priority); err != nil {
			return 0, err
		}
		values["priority"] = in.Priority
	}
	if len(values) == 0 {
		return 0, invalid("Nothing to update")
	}
	var stamp *model.Reply
	if in.Status == model.ContactReplied {
		now := s.now().UTC()
		stamp = &model.Reply{RepliedBy: replier(p), RepliedAt: &now}
	}
	n, err := s.repo.BulkUpdate(ctx, in.IDs, values, stamp)
	if err != nil {
		return 0, fmt.Errorf("bulk update contact messages: %w", err)
	}
	return n, nil
}

// replier names the admin recorded on a reply.
func replier(p pkg.Principal) string {
	if p.Name != "" {
		return p.Name
	}
	return p.Username
}
