package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Association_Portal/internal/model"
	"Association_Portal/internal/pkg"
	"Association_Portal/internal/repository/database"
	"Association_Portal/internal/service"
	"Association_Portal/internal/upload"
)

type testServer struct {
	t         *testing.T
	handler   http.Handler
	uploadDir string
	admin     string
	editor    string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.Open(database.DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared", nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	uploadDir := t.TempDir()
	files, err := upload.NewLocalStore(uploadDir, "")
	require.NoError(t, err)

	tokens := pkg.NewTokenManager("test-secret", time.Hour)
	publisher := pkg.LogPublisher{Log: log}
	authSvc := service.NewAuthService(database.NewAdminRepository(db), tokens, log)
	eventRepo := database.NewEventRepository(db)

	seeded, err := authSvc.Seed(ctx, "admin", "admin-pass", "Site Admin")
	require.NoError(t, err)
	require.True(t, seeded)
	_, err = authSvc.CreateAdmin(ctx, service.AdminInput{Username: "editor", Password: "editor-pass", Name: "Ed Itor", Role: model.RoleEditor})
	require.NoError(t, err)

	s := &testServer{t: t, uploadDir: uploadDir}
	s.handler = New(Deps{
		Log:         log,
		Env:         "test",
		Development: false,
		Tokens:      tokens,
		Files:       files,
		UploadDir:   uploadDir,
		Auth:        authSvc,
		Articles:    service.NewArticleService(database.NewArticleRepository(db)),
		Events:      service.NewEventService(eventRepo, publisher, log),
		Gallery:     service.NewGalleryService(database.NewGalleryRepository(db), eventRepo),
		BookClub:    service.NewBookClubService(database.NewBookRepository(db), database.NewDiscussionRepository(db), publisher, log),
		Newsletters: service.NewNewsletterService(database.NewNewsletterRepository(db), files, nil),
		Contact:     service.NewContactService(database.NewContactRepository(db), pkg.LogMailer{Log: log}, publisher, log),
		Academic:    service.NewAcademicService(database.NewAcademicRepository(db)),
	}, Limits{
		AllowedOrigins: []string{"http://localhost:3000"},
		Requests:       10000,
		Window:         time.Minute,
	})

	s.admin = s.login("admin", "admin-pass")
	s.editor = s.login("editor", "editor-pass")
	return s
}

func (s *testServer) serve(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.serve(req, token)
}

func (s *testServer) login(username, password string) string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode(s.t, rec)["token"].(string)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	msg, _ := decode(t, rec)["message"].(string)
	return msg
}

func idOf(t *testing.T, rec *httptest.ResponseRecorder) uint64 {
	t.Helper()
	id, ok := decode(t, rec)["id"].(float64)
	require.True(t, ok, rec.Body.String())
	return uint64(id)
}

func TestAuth_LoginVerifyRoundTrip(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/auth/verify", s.admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decode(t, rec)["user"].(map[string]any)
	assert.Equal(t, "admin", user["username"])
	assert.Equal(t, model.RoleAdmin, user["role"])
	assert.Equal(t, "Site Admin", user["name"])
	assert.NotZero(t, user["id"])

	rec = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "password": "admin-pass"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user, decode(t, rec)["user"])
}

func TestAuth_RejectionsAreIndistinguishable(t *testing.T) {
	s := newTestServer(t)

	unknown := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "nobody", "password": "admin-pass"})
	wrong := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.JSONEq(t, unknown.Body.String(), wrong.Body.String())

	rec := s.do(http.MethodPost, "/api/articles", "", map[string]string{"title": "x", "content": "y"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "No token, authorization denied", message(t, rec))

	rec = s.do(http.MethodPost, "/api/articles", "garbage", map[string]string{"title": "x", "content": "y"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token is not valid", message(t, rec))
}

func TestAuth_ChangePassword(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/auth/change-password", s.editor, map[string]string{"currentPassword": "bad", "newPassword": "another-pass"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Current password is incorrect", message(t, rec))

	rec = s.do(http.MethodPost, "/api/auth/change-password", s.editor, map[string]string{"currentPassword": "editor-pass", "newPassword": "another-pass"})
	require.Equal(t, http.StatusOK, rec.Code)
	s.login("editor", "another-pass")
}

func TestAdminRoutes_RequireAdminRole(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/auth/admins", s.editor, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied", message(t, rec))

	rec = s.do(http.MethodGet, "/api/contact", s.editor, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPut, "/api/academic-links", s.editor, map[string]string{"level100": "https://l100.example"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/auth/admins", s.admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["items"], 2)
}

func TestArticles_Lifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/articles", s.editor, map[string]any{
		"title":   "Orientation week",
		"content": "Welcome to campus",
		"tags":    []string{"news", "freshers"},
		"status":  "published",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := idOf(t, rec)
	created := decode(t, rec)
	assert.Equal(t, "Ed Itor", created["author"])
	assert.NotNil(t, created["publishedAt"])

	path := fmt.Sprintf("/api/articles/%d", id)
	rec = s.do(http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "Orientation week", got["title"])
	assert.EqualValues(t, 1, got["views"])
	assert.Equal(t, []any{"news", "freshers"}, got["tags"])

	rec = s.do(http.MethodPut, path, s.editor, map[string]any{"title": "Orientation week 2025", "content": ""})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	assert.Equal(t, "Orientation week 2025", updated["title"])
	assert.Equal(t, "Welcome to campus", updated["content"])

	rec = s.do(http.MethodPost, path+"/like", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["likes"])

	rec = s.do(http.MethodDelete, path, s.editor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Article deleted successfully", message(t, rec))

	rec = s.do(http.MethodDelete, path, s.editor, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Article not found", message(t, rec))
}

func TestArticles_ValidationAndIDs(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/articles", s.editor, map[string]any{"content": "no title"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title is required", message(t, rec))

	rec = s.do(http.MethodGet, "/api/articles/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid ID", message(t, rec))

	rec = s.do(http.MethodGet, "/api/articles/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArticles_Pagination(t *testing.T) {
	s := newTestServer(t)
	for i := range 15 {
		rec := s.do(http.MethodPost, "/api/articles", s.admin, map[string]any{
			"title":   fmt.Sprintf("Post %d", i),
			"content": "body",
			"status":  "published",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := s.do(http.MethodGet, "/api/articles?page=2&limit=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode(t, rec)
	assert.Len(t, page["items"], 5)
	assert.EqualValues(t, 2, page["totalPages"])
	assert.EqualValues(t, 2, page["currentPage"])
	assert.EqualValues(t, 15, page["total"])

	rec = s.do(http.MethodGet, "/api/articles?page=-1&limit=abc", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page = decode(t, rec)
	assert.Len(t, page["items"], 10)
	assert.EqualValues(t, 1, page["currentPage"])

	rec = s.do(http.MethodGet, "/api/articles/featured/latest?limit=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var latest []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &latest))
	assert.Len(t, latest, 2)
}

func TestArticles_MultipartUpload(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "With picture"))
	require.NoError(t, mw.WriteField("content", "See the photo"))
	require.NoError(t, mw.WriteField("tags", "photo,campus"))
	fw, err := mw.CreateFormFile("featuredImage", "Cover.PNG")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/articles", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := s.serve(req, s.editor)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode(t, rec)
	url, _ := created["featuredImage"].(string)
	assert.True(t, strings.HasPrefix(url, "/uploads/articles/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)
	assert.Equal(t, []any{"photo", "campus"}, created["tags"])

	rec = s.do(http.MethodGet, url, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestArticles_FailedCreateDropsUpload(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("content", "No title"))
	fw, err := mw.CreateFormFile("featuredImage", "cover.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/articles", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := s.serve(req, s.editor)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	entries, err := os.ReadDir(filepath.Join(s.uploadDir, "articles"))
	if !os.IsNotExist(err) {
		require.NoError(t, err)
	}
	assert.Empty(t, entries)
}

func TestEvents_MultipartGallery(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Open day"))
	require.NoError(t, mw.WriteField("description", "Campus tour"))
	require.NoError(t, mw.WriteField("date", "2020-09-01"))
	require.NoError(t, mw.WriteField("location", "Front gate"))
	require.NoError(t, mw.WriteField("gallery", "/uploads/events/kept.jpg"))
	for _, name := range []string{"one.jpg", "two.jpg"} {
		fw, err := mw.CreateFormFile("gallery", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/events", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := s.serve(req, s.editor)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	gallery, _ := decode(t, rec)["gallery"].([]any)
	require.Len(t, gallery, 3)
	assert.Equal(t, "/uploads/events/kept.jpg", gallery[0])
	for _, url := range gallery[1:] {
		assert.True(t, strings.HasPrefix(url.(string), "/uploads/events/"), url)
	}
}

func TestEvents_StatusAndRegistration(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/events", s.editor, map[string]any{
		"title":       "Alumni dinner",
		"description": "Annual dinner",
		"date":        "2020-05-01",
		"location":    "Main hall",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, model.EventCompleted, decode(t, rec)["status"])

	rec = s.do(http.MethodPost, "/api/events", s.editor, map[string]any{
		"title":           "Hackathon",
		"description":     "48 hours",
		"date":            time.Now().AddDate(1, 0, 0).Format("2006-01-02"),
		"location":        "Lab 2",
		"maxParticipants": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, model.EventUpcoming, decode(t, rec)["status"])
	path := fmt.Sprintf("/api/events/%d/register", idOf(t, rec))

	rec = s.do(http.MethodPost, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["currentParticipants"])

	rec = s.do(http.MethodPost, path, "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Event is at full capacity", message(t, rec))

	rec = s.do(http.MethodGet, "/api/events/upcoming/latest", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var upcoming []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &upcoming))
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Hackathon", upcoming[0]["title"])
}

func TestBookClub_ReviewsAndJoin(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/bookclub/books", s.editor, map[string]any{"title": "Things Fall Apart", "author": "Chinua Achebe", "status": "current"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	bookID := idOf(t, rec)

	for _, rating := range []int{4, 5} {
		rec = s.do(http.MethodPost, fmt.Sprintf("/api/bookclub/books/%d/reviews", bookID), "", map[string]any{"name": "Reader", "rating": rating})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	assert.InDelta(t, 4.5, decode(t, rec)["rating"], 1e-9)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/bookclub/books/%d/reviews", bookID), "", map[string]any{"name": "Reader", "rating": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/bookclub/current-book", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Things Fall Apart", decode(t, rec)["title"])

	rec = s.do(http.MethodPost, "/api/bookclub/discussions", s.editor, map[string]any{
		"bookId":          bookID,
		"title":           "Part one",
		"date":            "2031-02-01",
		"location":        "Library",
		"maxParticipants": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	discussion := decode(t, rec)
	assert.Equal(t, "Things Fall Apart", discussion["book"].(map[string]any)["title"])
	path := fmt.Sprintf("/api/bookclub/discussions/%d/join", uint64(discussion["id"].(float64)))

	rec = s.do(http.MethodPost, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, path, "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Discussion is at full capacity", message(t, rec))
}

func TestContact_SubmitAndManage(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/contact", "", map[string]any{"name": "Kofi", "email": "not-an-email", "subject": "Hi", "message": "Hello"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid email format", message(t, rec))

	rec = s.do(http.MethodPost, "/api/contact", "", map[string]any{"name": "Kofi", "email": "Kofi@Example.com", "subject": "Membership", "message": "How do I join?", "category": "membership"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Message sent successfully", message(t, rec))
	path := fmt.Sprintf("/api/contact/%d", idOf(t, rec))

	rec = s.do(http.MethodGet, "/api/contact", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, path, s.admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "kofi@example.com", got["email"])
	assert.Equal(t, "read", got["status"])

	rec = s.do(http.MethodPut, path, s.admin, map[string]any{"status": "replied", "reply": map[string]string{"message": "Visit our office"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	reply := decode(t, rec)["reply"].(map[string]any)
	assert.Equal(t, "Site Admin", reply["repliedBy"])
	assert.NotNil(t, reply["repliedAt"])

	rec = s.do(http.MethodGet, "/api/contact/stats/overview", s.admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["total"])

	rec = s.do(http.MethodPatch, "/api/contact/bulk-update", s.admin, map[string]any{"ids": []uint64{1}, "status": "resolved"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, decode(t, rec)["modifiedCount"])
}

func TestNewsletters_UploadAndStream(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Spring issue"))
	fw, err := mw.CreateFormFile("file", "spring.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 spring"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/newsletters", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := s.serve(req, s.editor)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	name := created["fileName"].(string)

	rec = s.do(http.MethodGet, "/api/newsletters/public/"+name, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, fmt.Sprintf("inline; filename=%q", name), rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 spring", rec.Body.String())

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/newsletters/%d/download", uint64(created["id"].(float64))), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["downloads"])

	rec = s.do(http.MethodGet, "/api/newsletters/public/missing.pdf", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAcademicLinks(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/academic-links", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", decode(t, rec)["level100"])

	rec = s.do(http.MethodPut, "/api/academic-links", s.admin, map[string]string{"level100": "https://l100.example"})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "https://l100.example", got["level100"])
	assert.Equal(t, "", got["postgraduate"])
}

func TestHealthAndNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode(t, rec)
	assert.Equal(t, "OK", health["status"])
	assert.Equal(t, "test", health["environment"])

	rec = s.do(http.MethodGet, "/api/nothing-here", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", message(t, rec))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/articles", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := s.serve(req, "")
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
