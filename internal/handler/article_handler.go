package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"Association_Portal/internal/service"
	"Association_Portal/internal/upload"
)

const articleFolder = "articles"

type ArticleHandler struct {
	responder
	files uploader
	svc   *service.ArticleService
}

func NewArticleHandler(svc *service.ArticleService, files upload.Store, log *slog.Logger, development bool) *ArticleHandler {
	return &ArticleHandler{responder: newResponder(log, development), files: newUploader(files, log), svc: svc}
}

// List GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), service.ArticleFilter{
		Status:      c.Query("status"),
		Category:    c.Query("category"),
		Search:      c.Query("search"),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Latest GET /api/articles/featured/latest
func (h *ArticleHandler) Latest(c *gin.Context) {
	items, err := h.svc.Latest(c.Request.Context(), latestLimit(c, 3))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ArticleHandler) input(c *gin.Context) (service.ArticleInput, bool) {
	var in service.ArticleInput
	if !h.bind(c, &in) {
		return in, false
	}
	url, _, err := h.files.single(c, "featuredImage", articleFolder)
	if err != nil {
		h.failUpload(c, h.files, err)
		return in, false
	}
	if url != "" {
		in.FeaturedImage = url
	}
	return in, true
}

// Create POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}
	a, err := h.svc.Create(c.Request.Context(), principal(c), in)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Update PUT /api/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	in, ok := h.input(c)
	if !ok {
		return
	}
	a, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Delete DELETE /api/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "Article")
}

// Like POST /api/articles/:id/like
func (h *ArticleHandler) Like(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	likes, err := h.svc.Like(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}
