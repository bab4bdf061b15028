package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"Association_Portal/internal/service"
	"Association_Portal/internal/upload"
)

const bookFolder = "books"

type BookClubHandler struct {
	responder
	files uploader
	svc   *service.BookClubService
}

func NewBookClubHandler(svc *service.BookClubService, files upload.Store, log *slog.Logger, development bool) *BookClubHandler {
	return &BookClubHandler{responder: newResponder(log, development), files: newUploader(files, log), svc: svc}
}

// ListBooks GET /api/bookclub/books
func (h *BookClubHandler) ListBooks(c *gin.Context) {
	page, err := h.svc.ListBooks(c.Request.Context(), service.BookFilter{
		Status:      c.Query("status"),
		Genre:       c.Query("genre"),
		Search:      c.Query("search"),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CurrentBook GET /api/bookclub/current-book
func (h *BookClubHandler) CurrentBook(c *gin.Context) {
	b, err := h.svc.CurrentBook(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBook GET /api/bookclub/books/:id
func (h *BookClubHandler) GetBook(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	b, err := h.svc.GetBook(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookClubHandler) bookInput(c *gin.Context) (service.BookInput, bool) {
	var in service.BookInput
	if !h.bind(c, &in) {
		return in, false
	}
	url, _, err := h.files.single(c, "coverImage", bookFolder)
	if err != nil {
		h.failUpload(c, h.files, err)
		return in, false
	}
	if url != "" {
		in.CoverImage = url
	}
	return in, true
}

// CreateBook POST /api/bookclub/books
func (h *BookClubHandler) CreateBook(c *gin.Context) {
	in, ok := h.bookInput(c)
	if !ok {
		return
	}
	b, err := h.svc.CreateBook(c.Request.Context(), in)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBook PUT /api/bookclub/books/:id
func (h *BookClubHandler) UpdateBook(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	in, ok := h.bookInput(c)
	if !ok {
		return
	}
	b, err := h.svc.UpdateBook(c.Request.Context(), id, in)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBook DELETE /api/bookclub/books/:id
func (h *BookClubHandler) DeleteBook(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteBook(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "Book")
}

// AddReview POST /api/bookclub/books/:id/reviews
func (h *BookClubHandler) AddReview(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	var in service.ReviewInput
	if !h.bind(c, &in) {
		return
	}
	b, err := h.svc.AddReview(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListDiscussions GET /api/bookclub/discussions
func (h *BookClubHandler) ListDiscussions(c *gin.Context) {
	page, err := h.svc.ListDiscussions(c.Request.Context(), service.DiscussionFilter{
		Status:      c.Query("status"),
		BookID:      uintQuery(c, "bookId"),
		Upcoming:    flag(c, "upcoming"),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetDiscussion GET /api/bookclub/discussions/:id
func (h *BookClubHandler) GetDiscussion(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.GetDiscussion(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// CreateDiscussion POST /api/bookclub/discussions
func (h *BookClubHandler) CreateDiscussion(c *gin.Context) {
	var in service.DiscussionInput
	if !h.bind(c, &in) {
		return
	}
	d, err := h.svc.CreateDiscussion(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// UpdateDiscussion PUT /api/bookclub/discussions/:id
func (h *BookClubHandler) UpdateDiscussion(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	var in service.DiscussionInput
	if !h.bind(c, &in) {
		return
	}
	d, err := h.svc.UpdateDiscussion(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DeleteDiscussion DELETE /api/bookclub/discussions/:id
func (h *BookClubHandler) DeleteDiscussion(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteDiscussion(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "Discussion")
}

// JoinDiscussion POST /api/bookclub/discussions/:id/join
func (h *BookClubHandler) JoinDiscussion(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.JoinDiscussion(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":             "Successfully joined discussion",
		"currentParticipants": d.CurrentParticipants,
		"maxParticipants":     d.MaxParticipants,
	})
}
