package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"Association_Portal/internal/service"
	"Association_Portal/internal/upload"
)

type NewsletterHandler struct {
	responder
	files uploader
	svc   *service.NewsletterService
}

func NewNewsletterHandler(svc *service.NewsletterService, files upload.Store, log *slog.Logger, development bool) *NewsletterHandler {
	return &NewsletterHandler{responder: newResponder(log, development), files: newUploader(files, log), svc: svc}
}

// List GET /api/newsletters
func (h *NewsletterHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), service.NewsletterFilter{
		Search:      c.Query("search"),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get GET /api/newsletters/:id
func (h *NewsletterHandler) Get(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	n, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// input binds the body. An uploaded "file" replaces the file URL and name,
// an uploaded "coverImage" replaces the cover.
func (h *NewsletterHandler) input(c *gin.Context) (service.NewsletterInput, bool) {
	var in service.NewsletterInput
	if !h.bind(c, &in) {
		return in, false
	}
	url, name, err := h.files.single(c, "file", service.NewsletterFolder)
	if err != nil {
		h.failUpload(c, h.files, err)
		return in, false
	}
	if url != "" {
		in.FileURL, in.FileName = url, name
	}
	cover, _, err := h.files.single(c, "coverImage", service.NewsletterFolder)
	if err != nil {
		h.failUpload(c, h.files, err)
		return in, false
	}
	if cover != "" {
		in.CoverImage = cover
	}
	return in, true
}

// Create POST /api/newsletters
func (h *NewsletterHandler) Create(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}
	n, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// Update PUT /api/newsletters/:id
func (h *NewsletterHandler) Update(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	in, ok := h.input(c)
	if !ok {
		return
	}
	n, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// Delete DELETE /api/newsletters/:id
func (h *NewsletterHandler) Delete(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "Newsletter")
}

// Download POST /api/newsletters/:id/download
func (h *NewsletterHandler) Download(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	n, err := h.svc.Download(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloads": n.Downloads, "fileUrl": n.FileURL})
}

// Stream GET /api/newsletters/public/:filename
func (h *NewsletterHandler) Stream(c *gin.Context) {
	f, err := h.svc.OpenFile(c.Request.Context(), c.Param("filename"))
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Body.Close()

	ct := f.ContentType
	if ct == "" {
		ct = "application/pdf"
	}
	c.Header("Content-Type", ct)
	if f.ContentLength > 0 {
		c.Header("Content-Length", strconv.FormatInt(f.ContentLength, 10))
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", f.Name))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, f.Body); err != nil {
		h.log.WarnContext(c.Request.Context(), "newsletter stream interrupted",
			"file", f.Name, "err", err)
	}
}
