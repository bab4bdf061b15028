package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"Association_Portal/internal/service"
	"Association_Portal/internal/upload"
)

const galleryFolder = "gallery"

type GalleryHandler struct {
	responder
	files uploader
	svc   *service.GalleryService
}

func NewGalleryHandler(svc *service.GalleryService, files upload.Store, log *slog.Logger, development bool) *GalleryHandler {
	return &GalleryHandler{responder: newResponder(log, development), files: newUploader(files, log), svc: svc}
}

// List GET /api/gallery
func (h *GalleryHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), service.GalleryFilter{
		Type:        c.Query("type"),
		Category:    c.Query("category"),
		EventID:     uintQuery(c, "eventId"),
		Featured:    flag(c, "featured"),
		Search:      c.Query("search"),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Featured GET /api/gallery/featured/latest
func (h *GalleryHandler) Featured(c *gin.Context) {
	items, err := h.svc.Featured(c.Request.Context(), latestLimit(c, 6))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get GET /api/gallery/:id
func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	g, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *GalleryHandler) input(c *gin.Context) (service.GalleryInput, bool) {
	var in service.GalleryInput
	if !h.bind(c, &in) {
		return in, false
	}
	url, _, err := h.files.single(c, "file", galleryFolder)
	if err != nil {
		h.failUpload(c, h.files, err)
		return in, false
	}
	if url != "" {
		in.URL = url
	}
	thumb, _, err := h.files.single(c, "thumbnail", galleryFolder)
	if err != nil {
		h.failUpload(c, h.files, err)
		return in, false
	}
	if thumb != "" {
		in.Thumbnail = thumb
	}
	return in, true
}

// Create POST /api/gallery
func (h *GalleryHandler) Create(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}
	g, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// Update PUT /api/gallery/:id
func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	in, ok := h.input(c)
	if !ok {
		return
	}
	g, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// Delete DELETE /api/gallery/:id
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "Gallery item")
}

// Like POST /api/gallery/:id/like
func (h *GalleryHandler) Like(c *gin.Context) {
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

// Bulk POST /api/gallery/bulk/:eventId
func (h *GalleryHandler) Bulk(c *gin.Context) {
	eventID, ok := h.id(c, "eventId")
	if !ok {
		return
	}
	var in service.GalleryInput
	if !h.bind(c, &in) {
		return
	}
	urls, err := h.files.many(c, "images", galleryFolder)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	items, err := h.svc.BulkCreate(c.Request.Context(), eventID, urls, in)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Images uploaded successfully",
		"items":   items,
	})
}
