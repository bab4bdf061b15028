package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"Association_Portal/internal/model"
	"Association_Portal/internal/repository/database"
	"Association_Portal/internal/upload"
)

const (
	resourceNewsletter = "Newsletter"
	NewsletterFolder   = "newsletters"
)

type NewsletterService struct {
	repo   *database.NewsletterRepository
	files  upload.Store
	client *http.Client
	now    func() time.Time
}

func NewNewsletterService(repo *database.NewsletterRepository, files upload.Store, client *http.Client) *NewsletterService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &NewsletterService{repo: repo, files: files, client: client, now: time.Now}
}

type NewsletterInput struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	IssueNumber string `json:"issueNumber" form:"issueNumber"`
	PublishDate string `json:"publishDate" form:"publishDate"`
	FileURL     string `json:"fileUrl" form:"fileUrl"`
	FileName    string `json:"fileName" form:"fileName"`
	CoverImage  string `json:"coverImage" form:"coverImage"`
}

func (in NewsletterInput) merge(n *model.Newsletter) error {
	mergeString(&n.Title, in.Title)
	mergeString(&n.Description, in.Description)
	mergeString(&n.IssueNumber, in.IssueNumber)
	if err := mergeDatePtr("publishDate", &n.PublishDate, in.PublishDate); err != nil {
		return err
	}
	mergeString(&n.FileURL, in.FileURL)
	mergeString(&n.FileName, in.FileName)
	mergeString(&n.CoverImage, in.CoverImage)
	if in.FileURL != "" && in.FileName == "" {
		n.FileName = path.Base(in.FileURL)
	}
	return nil
}

type NewsletterFilter struct {
	Search string
	PageRequest
}

func (s *NewsletterService) List(ctx context.Context, f NewsletterFilter) (*Page[model.Newsletter], error) {
	q := f.query("publish_date DESC, created_at DESC, id DESC",
		database.Search(f.Search, "title", "description", "issue_number"),
	)
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list newsletters: %w", err)
	}
	return newPage(items, total, f.PageRequest), nil
}

func (s *NewsletterService) Get(ctx context.Context, id uint64) (*model.Newsletter, error) {
	return findByID(ctx, s.repo.Store, resourceNewsletter, id)
}

func (s *NewsletterService) Create(ctx context.Context, in NewsletterInput) (*model.Newsletter, error) {
	n := &model.Newsletter{}
	if err := in.merge(n); err != nil {
		return nil, err
	}
	if n.PublishDate == nil {
		now := s.now().UTC()
		n.PublishDate = &now
	}
	if err := check(n); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create newsletter: %w", err)
	}
	return n, nil
}

func (s *NewsletterService) Update(ctx context.Context, id uint64, in NewsletterInput) (*model.Newsletter, error) {
	n, err := findByID(ctx, s.repo.Store, resourceNewsletter, id)
	if err != nil {
		return nil, err
	}
	if err := in.merge(n); err != nil {
		return nil, err
	}
	if err := check(n); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, n); err != nil {
		return nil, fmt.Errorf("update newsletter: %w", err)
	}
	return n, nil
}

func (s *NewsletterService) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, s.repo.Store, resourceNewsletter, id)
}

// Download counts one download and returns the newsletter so the client can
// follow its file URL.
func (s *NewsletterService) Download(ctx context.Context, id uint64) (*model.Newsletter, error) {
	if err := increment(ctx, s.repo.Store, resourceNewsletter, id, "downloads"); err != nil {
		return nil, err
	}
	return findByID(ctx, s.repo.Store, resourceNewsletter, id)
}

// FileStream is an open newsletter file ready to be copied to a client.
type FileStream struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	Name          string
}

// OpenFile opens the file of the newsletter stored under name. Files kept in
// the upload store are read directly, anything else is fetched from its URL
// and the remote content type and length are passed through.
func (s *NewsletterService) OpenFile(ctx context.Context, name string) (*FileStream, error) {
	n, err := s.repo.FindByFileName(ctx, name)
	if err != nil {
		return nil, notFound(resourceNewsletter, err)
	}

	if folder, file, ok := s.locate(n.FileURL); ok {
		body, size, err := s.files.Open(ctx, folder, file)
		if err != nil {
			if errors.Is(err, upload.ErrNotFound) {
				return nil, &NotFoundError{Resource: "File"}
			}
			return nil, fmt.Errorf("open newsletter file: %w", err)
		}
		ct := mime.TypeByExtension(filepath.Ext(file))
		if ct == "" {
			ct = "application/octet-stream"
		}
		return &FileStream{Body: body, ContentType: ct, ContentLength: size, Name: n.FileName}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.FileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("newsletter file url: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch newsletter file: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return nil, &NotFoundError{Resource: "File"}
		}
		return nil, fmt.Errorf("fetch newsletter file: upstream status %d", resp.StatusCode)
	}
	length := resp.ContentLength
	if length < 0 {
		length, _ = strconv.ParseInt(resp.Header.Get("Content-Length"), 10, 64)
	}
	return &FileStream{
		Body:          resp.Body,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: length,
		Name:          n.FileName,
	}, nil
}

func (s *NewsletterService) locate(url string) (string, string, bool) {
	if s.files == nil {
		return "", "", false
	}
	return s.files.Locate(url)
}
