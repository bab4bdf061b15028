package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"Association_Portal/internal/service"
)

type ContactHandler struct {
	responder
	svc *service.ContactService
}

func NewContactHandler(svc *service.ContactService, log *slog.Logger, development bool) *ContactHandler {
	return &ContactHandler{responder: newResponder(log, development), svc: svc}
}

// Submit POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var in service.ContactInput
	if !h.bind(c, &in) {
		return
	}
	m, err := h.svc.Submit(c.Request.Context(), in, c.ClientIP())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully", "id": m.ID})
}

// List GET /api/contact
func (h *ContactHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), service.ContactFilter{
		Status:      c.Query("status"),
		Category:    c.Query("category"),
		Priority:    c.Query("priority"),
		Search:      c.Query("search"),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Stats GET /api/contact/stats/overview
func (h *ContactHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Get GET /api/contact/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	m, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Update PUT /api/contact/:id
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	var in service.ContactUpdate
	if !h.bind(c, &in) {
		return
	}
	m, err := h.svc.Update(c.Request.Context(), principal(c), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Delete DELETE /api/contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := h.id(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "Message")
}

// BulkUpdate PATCH /api/contact/bulk-update
func (h *ContactHandler) BulkUpdate(c *gin.Context) {
	var in service.ContactBulkUpdate
	if !h.bind(c, &in) {
		return
	}
	n, err := h.svc.BulkUpdate(c.Request.Context(), principal(c), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Messages updated successfully", "modifiedCount": n})
}
