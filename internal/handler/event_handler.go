package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"Association_Portal/internal/service"
	"Association_Portal/internal/upload"
)

const eventFolder = "events"

type EventHandler struct {
	responder
	files uploader
	svc   *service.EventService
}

func NewEventHandler(svc *service.EventService, files upload.Store, log *slog.Logger, development bool) *EventHandler {
	return &EventHandler{responder: newResponder(log, development), files: newUploader(files, log), svc: svc}
}

// List GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), service.EventFilter{
		Status:      c.Query("status"),
		Category:    c.Query("category"),
		Search:      c.Query("search"),
		Upcoming:    flag(c, "upcoming"),
		Ascending:   c.Query("sort") == "asc",
		PageRequest: pageRequest(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Upcoming GET /api/events/upcoming/latest
func (h *EventHandler) Upcoming(c *gin.Context) {
	items, err := h.svc.Upcoming(c.Request.Context(), latestLimit(c, 3))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Past GET /api/events/past/latest
func (h *EventHandler) Past(c *gin.Context) {
	items, err := h.svc.Past(c.Request.Context(), latestLimit(c, 3))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get GET /api/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	e, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// input binds the body and stores uploads: the featuredImage file becomes
// the featured image and every gallery file is appended to the gallery.
// Text gallery values in a form body keep their existing URLs.
func (h *EventHandler) input(c *gin.Context) (service.EventInput, bool) {
	var in service.EventInput
	if !h.bind(c, &in) {
		return in, false
	}
	if isMultipart(c) {
		if vals := c.PostFormArray("gallery"); len(vals) == 1 {
			if err := in.Gallery.UnmarshalParam(vals[0]); err != nil {
				h.badRequest(c, "Invalid request body")
				return in, false
			}
		} else if len(vals) > 1 {
			in.Gallery = service.ListOf(vals...)
		}
	}
	url, _, err := h.files.single(c, "featuredImage", eventFolder)
	if err != nil {
		h.failUpload(c, h.files, err)
		return in, false
	}
	if url != "" {
		in.FeaturedImage = url
	}
	in.GalleryUploads, err = h.files.many(c, "gallery", eventFolder)
	if err != nil {
		h.failUpload(c, h.files, err)
		return in, false
	}
	return in, true
}

// Create POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}
	e, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// Update PUT /api/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	in, ok := h.input(c)
	if !ok {
		return
	}
	e, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		h.failUpload(c, h.files, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// Delete DELETE /api/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "Event")
}

// Register POST /api/events/:id/register
func (h *EventHandler) Register(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	e, err := h.svc.Register(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":             "Successfully registered for event",
		"currentParticipants": e.CurrentParticipants,
		"maxParticipants":     e.MaxParticipants,
	})
}
